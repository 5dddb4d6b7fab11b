package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "List the contents of the best-matching folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	result, err := a.actions.HandleFileAction(cmd.Context(), domain.ActionList, domain.KindFolder, args[0])
	if err != nil {
		return err
	}

	switch result.Outcome {
	case domain.OutcomeNotFound:
		cmd.Printf("No folder matching %q found.\n", args[0])
		return nil

	case domain.OutcomeListed:
		cmd.Printf("%s:\n", result.Matches[0].Path)
		if len(result.Children) == 0 {
			cmd.Println("  (empty)")
			return nil
		}
		for _, child := range result.Children {
			cmd.Printf("  %s\n", child)
		}
		return nil

	default:
		return fmt.Errorf("unexpected outcome %q", result.Outcome)
	}
}
