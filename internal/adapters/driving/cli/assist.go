package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/services"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Interactive spoken-style command loop",
	Long: `Reads utterances from stdin the way a voice pipeline would deliver
them and resolves file commands against the catalog:

  open file quarterly budget
  open folder tax documents
  list folder invoices

While a disambiguation is pending, selection phrases are handled first:
a number, an ordinal ("second"), "repeat", or "cancel". Type "exit" to
leave.`,
	RunE: runAssist,
}

func init() {
	rootCmd.AddCommand(assistCmd)
}

// utterancePatterns are the fast-path command forms, longest prefix
// first so "open the file" wins over "open file".
var utterancePatterns = []struct {
	prefix string
	action domain.Action
	kind   domain.EntryKind
}{
	{"open the file ", domain.ActionOpen, domain.KindFile},
	{"open file ", domain.ActionOpen, domain.KindFile},
	{"open the folder ", domain.ActionOpen, domain.KindFolder},
	{"open folder ", domain.ActionOpen, domain.KindFolder},
	{"list the folder ", domain.ActionList, domain.KindFolder},
	{"list folder ", domain.ActionList, domain.KindFolder},
	{"show the folder ", domain.ActionList, domain.KindFolder},
	{"show folder ", domain.ActionList, domain.KindFolder},
}

// parseUtterance matches an utterance against the command forms.
func parseUtterance(utterance string) (domain.Action, domain.EntryKind, string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(utterance))
	for _, pattern := range utterancePatterns {
		if strings.HasPrefix(lowered, pattern.prefix) {
			target := strings.TrimSpace(lowered[len(pattern.prefix):])
			if target == "" {
				return "", "", "", false
			}
			return pattern.action, pattern.kind, target, true
		}
	}
	return "", "", "", false
}

func runAssist(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	if roots := a.configuredRoots(); len(roots) > 0 {
		cmd.Println("Updating catalog...")
		if err := a.indexer.EnsureIndex(cmd.Context(), roots); err != nil {
			return err
		}
	}

	cmd.Println(`Listening. Try "open file <name>" or "list folder <name>"; "exit" to quit.`)

	reader := bufio.NewReader(os.Stdin)
	for {
		cmd.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		utterance := strings.TrimSpace(line)
		if utterance == "" {
			continue
		}
		if utterance == "exit" || utterance == "quit" {
			return nil
		}

		handleAssistUtterance(cmd, a, utterance)
	}
}

// handleAssistUtterance routes one utterance: selection phrases first,
// then the structured command forms.
func handleAssistUtterance(cmd *cobra.Command, a *app, utterance string) {
	resp := a.session.HandleUtterance(utterance)
	switch resp.Outcome {
	case services.SessionOpened:
		cmd.Printf("Opened %s\n", resp.Entry.Path)
		return
	case services.SessionOpenFailed:
		cmd.Printf("Could not open %s\n", resp.Entry.Path)
		return
	case services.SessionCancelled:
		cmd.Println("Okay, cancelled.")
		return
	case services.SessionShowOptions:
		printOptions(cmd, resp.Options)
		return
	case services.SessionOutOfRange:
		cmd.Printf("Please pick a number between 1 and %d.\n", len(resp.Options))
		return
	case services.SessionNotHandled:
		// Fall through to command parsing.
	}

	action, kind, target, ok := parseUtterance(utterance)
	if !ok {
		cmd.Println(`Sorry, I can "open file <name>", "open folder <name>", or "list folder <name>".`)
		return
	}

	result, err := a.actions.HandleFileAction(cmd.Context(), action, kind, target)
	if err != nil {
		cmd.Printf("Something went wrong: %v\n", err)
		return
	}

	switch result.Outcome {
	case domain.OutcomeNotFound:
		cmd.Printf("I couldn't find a %s matching %q.\n", kind, target)

	case domain.OutcomeOpened:
		cmd.Printf("Opened %s\n", result.Matches[0].Path)

	case domain.OutcomeAmbiguous:
		a.session.SetPending(result.Matches, kind)
		printOptions(cmd, result.Matches)
		cmd.Println(`Which one? Say a number, "repeat", or "cancel".`)

	case domain.OutcomeListed:
		cmd.Printf("%s contains:\n", result.Matches[0].Name)
		for _, child := range result.Children {
			cmd.Printf("  %s\n", child)
		}
	}
}
