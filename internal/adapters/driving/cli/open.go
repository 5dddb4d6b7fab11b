package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/services"
)

var openKind string

var openCmd = &cobra.Command{
	Use:   "open [target]",
	Short: "Find a file or folder and open it with the OS",
	Long: `Resolves the target against the catalog and opens the best match.
When several entries match, the candidates are listed and a follow-up
choice is read from stdin: a number, an ordinal ("second"), "repeat",
or "cancel".`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openKind, "kind", "k", "file", "target kind: file or folder")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	kind, err := domain.ParseEntryKind(openKind)
	if err != nil {
		return fmt.Errorf("invalid kind %q: %w", openKind, err)
	}

	result, err := a.actions.HandleFileAction(cmd.Context(), domain.ActionOpen, kind, args[0])
	if err != nil {
		return err
	}

	switch result.Outcome {
	case domain.OutcomeNotFound:
		cmd.Printf("No %s matching %q found.\n", kind, args[0])
		return nil

	case domain.OutcomeOpened:
		cmd.Printf("Opened %s\n", result.Matches[0].Path)
		return nil

	case domain.OutcomeAmbiguous:
		a.session.SetPending(result.Matches, kind)
		return resolveSelection(cmd, a.session)

	default:
		return fmt.Errorf("unexpected outcome %q", result.Outcome)
	}
}

// resolveSelection runs the disambiguation dialogue on stdin until the
// user selects, cancels, or input ends.
func resolveSelection(cmd *cobra.Command, session *services.SelectionSession) error {
	pending, _ := session.Pending()
	printOptions(cmd, pending.Entries)

	reader := bufio.NewReader(os.Stdin)
	for session.HasPending() {
		cmd.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			session.Clear()
			return nil
		}

		resp := session.HandleUtterance(strings.TrimSpace(line))
		switch resp.Outcome {
		case services.SessionOpened:
			cmd.Printf("Opened %s\n", resp.Entry.Path)
		case services.SessionOpenFailed:
			cmd.Printf("Could not open %s\n", resp.Entry.Path)
		case services.SessionCancelled:
			cmd.Println("Cancelled.")
		case services.SessionShowOptions:
			printOptions(cmd, resp.Options)
		case services.SessionOutOfRange:
			cmd.Printf("Please pick a number between 1 and %d.\n", len(resp.Options))
		case services.SessionNotHandled:
			cmd.Println(`Say a number ("2", "second"), "repeat", or "cancel".`)
		}
	}
	return nil
}

func printOptions(cmd *cobra.Command, entries []domain.FileSystemEntry) {
	cmd.Println("Several matches found:")
	for i, entry := range entries {
		cmd.Printf("  [%d] %s (%s)\n", i+1, entry.Name, entry.Path)
	}
}
