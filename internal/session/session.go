// Package session runs one evned invocation: compose and publish a new note,
// or look up existing notes by title.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gerunddev/evned/internal/logger"
	"github.com/gerunddev/evned/internal/notestore"
	"github.com/gerunddev/evned/internal/tui"
	"github.com/gerunddev/evned/styles"
)

// Mode selects what a session does with its draft
type Mode int

const (
	// ModeCreate opens the editor and publishes the result as a new note
	ModeCreate Mode = iota
	// ModeEdit searches for notes matching the draft title
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// ChoosePrompt is shown above the search results
const ChoosePrompt = "Which note would you like to edit:"

// NoneOption is the last menu entry, choosing no note
const NoneOption = "None"

// Editor collects note text from the user
type Editor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

// Renderer converts markdown to note markup
type Renderer interface {
	Note(markdown string) (string, error)
}

// Session wires the collaborators of one invocation together
type Session struct {
	Editor   Editor
	Renderer Renderer
	Notes    notestore.Client
	Chooser  tui.Chooser
	Out      io.Writer
	Log      *logger.Logger
}

// Run executes the draft in the given mode.
// Note service failures are reported to Out and do not produce an error;
// local failures (editor, file I/O, terminal) are returned.
func (s *Session) Run(ctx context.Context, d Draft, mode Mode) error {
	if s.Log == nil {
		s.Log = logger.Discard()
	}

	switch mode {
	case ModeEdit:
		return s.edit(ctx, d)
	default:
		return s.create(ctx, d)
	}
}

func (s *Session) create(ctx context.Context, d Draft) error {
	body, err := s.Editor.Edit(ctx, d.Body)
	if err != nil {
		return fmt.Errorf("failed to edit note: %w", err)
	}
	d.Body = body

	content, err := s.Renderer.Note(d.Body)
	if err != nil {
		s.gracefulFailure(d.Body, err)
		return err
	}
	s.Log.NoteRendered(d.Title, len(d.Body), len(content))

	created, err := s.Notes.Create(ctx, notestore.NewNote{
		Title:   d.Title,
		Content: content,
		Tags:    d.Tags,
	})
	if err != nil {
		s.Log.RemoteError("create", err)
		s.gracefulFailure(d.Body, err)
		return nil
	}

	s.Log.NoteCreated(created.GUID, d.Title)
	fmt.Fprintln(s.Out, styles.SuccessStyle.Render(
		fmt.Sprintf("Successfully created a new note (GUID: %s)", created.GUID)))
	return nil
}

// gracefulFailure reports err and echoes the authored markdown verbatim
// between markers so it can be recovered by hand.
func (s *Session) gracefulFailure(markdown string, err error) {
	fmt.Fprintln(s.Out, styles.ErrorStyle.Render(
		fmt.Sprintf("Sorry, an error occurred saving the note (%s)", err)))
	fmt.Fprintln(s.Out, "Here's the markdown you were trying to save:")
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "--BEGIN--")
	io.WriteString(s.Out, markdown)
	if !strings.HasSuffix(markdown, "\n") {
		fmt.Fprintln(s.Out)
	}
	fmt.Fprintln(s.Out, "--END--")
	fmt.Fprintln(s.Out)
}

func (s *Session) edit(ctx context.Context, d Draft) error {
	notes, err := s.Notes.Search(ctx, d.Title, notestore.SearchLimit)
	if err != nil {
		s.Log.RemoteError("search", err)
		fmt.Fprintln(s.Out, styles.ErrorStyle.Render(
			fmt.Sprintf("Sorry, an error occurred searching for notes (%s)", err)))
		return nil
	}
	s.Log.SearchCompleted(d.Title, len(notes))

	if len(notes) == 0 {
		fmt.Fprintf(s.Out, "No notes were found matching '%s'\n", d.Title)
		return nil
	}

	options := make([]string, 0, len(notes)+1)
	for _, n := range notes {
		options = append(options, Label(n))
	}
	options = append(options, NoneOption)

	idx, err := s.Chooser.Choose(ChoosePrompt, options)
	if err != nil {
		return err
	}

	if idx < 0 || idx >= len(notes) {
		fmt.Fprintln(s.Out, "None!")
		return nil
	}

	// Selection ends here; the chosen note is only displayed
	fmt.Fprintf(s.Out, "%+v\n", notes[idx])
	return nil
}

// Label is the menu text for a search result
func Label(n notestore.Note) string {
	return n.Updated.Format("2006-01-02 15:04") + " " + n.Title
}
