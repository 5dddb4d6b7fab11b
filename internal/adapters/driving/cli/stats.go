package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// metaLastIndexTime mirrors the indexer's meta key.
const metaLastIndexTime = "last_index_time"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	stats, err := a.store.CatalogStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading catalog stats: %w", err)
	}

	cmd.Printf("Files:   %d\n", stats.Files)
	cmd.Printf("Folders: %d\n", stats.Folders)

	lastIndexed, err := a.store.GetMeta(cmd.Context(), metaLastIndexTime)
	switch {
	case err == nil:
		cmd.Printf("Last indexed: %s\n", lastIndexed)
	case errors.Is(err, domain.ErrNotFound):
		cmd.Println("Last indexed: never")
	default:
		return fmt.Errorf("reading last index time: %w", err)
	}

	cmd.Printf("Store: %s\n", a.store.Path())
	return nil
}
