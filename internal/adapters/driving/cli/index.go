package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/adapters/driven/config/file"
)

var indexSave bool

var indexCmd = &cobra.Command{
	Use:   "index [roots...]",
	Short: "Index filesystem roots into the catalog",
	Long: `Indexes the given roots: a full rebuild the first time a root is seen,
an incremental update afterwards. With no arguments, the roots from the
config file (index.roots) are used.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexSave, "save", false, "persist the given roots to the config file")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	roots := args
	if len(roots) == 0 {
		roots = a.configuredRoots()
	}
	if len(roots) == 0 {
		return errors.New("no roots given and none configured; run 'vocalis index <path> --save'")
	}

	if indexSave && len(args) > 0 {
		if err := a.cfg.Set(file.KeyRoots, args); err != nil {
			return fmt.Errorf("saving roots: %w", err)
		}
	}

	if err := a.indexer.EnsureIndex(cmd.Context(), roots); err != nil {
		return err
	}

	stats, err := a.store.CatalogStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading catalog stats: %w", err)
	}

	cmd.Printf("Catalog up to date: %d files, %d folders across %d root(s).\n",
		stats.Files, stats.Folders, len(roots))
	return nil
}
