package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog with a fuzzy query",
	Long: `Ranks catalogued files and folders against a spoken-style query:
token-set similarity on name and path, boosted by exact matches,
recency, document-type keywords and folder context.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 5)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	results, err := a.searcher.Search(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchList(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.FileSystemEntry) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, results []domain.FileSystemEntry) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, entry := range results {
		cmd.Printf("  [%d] %s (%s)\n", i+1, entry.Name, entry.Kind)
		cmd.Printf("      %s\n", entry.Path)
	}
	return nil
}
