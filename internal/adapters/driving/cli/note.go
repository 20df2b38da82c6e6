package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage saved notes",
	Long:  `Add, list, and delete the notes the launcher searches.`,
	RunE:  runNoteList,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Save a new note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved notes",
	RunE:  runNoteList,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "rm [note-id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

// noteBody is the body flag for note add.
var noteBody string

func init() {
	noteAddCmd.Flags().StringVarP(&noteBody, "body", "b", "", "note body text")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	if services == nil || services.Notes == nil {
		return errors.New("note store not configured")
	}

	note := domain.Note{
		Title: strings.Join(args, " "),
		Body:  noteBody,
	}
	if err := services.Notes.Save(cmd.Context(), note); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	cmd.Printf("Saved note: %s\n", note.Title)
	return nil
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Notes == nil {
		return errors.New("note store not configured")
	}

	notes, err := services.Notes.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		cmd.Println("No notes saved.")
		return nil
	}

	for i := range notes {
		cmd.Printf("  %s  %s\n", notes[i].ID, notes[i].Title)
		if notes[i].Body != "" {
			cmd.Printf("      %s\n", firstLine(notes[i].Body))
		}
	}
	cmd.Printf("\nTotal: %d notes\n", len(notes))
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	if services == nil || services.Notes == nil {
		return errors.New("note store not configured")
	}

	id := args[0]
	if err := services.Notes.Delete(cmd.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no note with ID %s", id)
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	cmd.Printf("Deleted note: %s\n", id)
	return nil
}

// firstLine returns the first line of a multi-line body.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
