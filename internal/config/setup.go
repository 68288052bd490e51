package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// TokenHelpURL explains how to obtain a developer token
const TokenHelpURL = "http://dev.evernote.com/start/core/authentication.php#devtoken"

// EditorResolver supplies the default answer for the editor prompt
type EditorResolver interface {
	DefaultEditor() string
}

// SystemEditor resolves the default editor from the environment and PATH
type SystemEditor struct{}

// DefaultEditor returns $VISUAL, then $EDITOR, then the location of vim
func (SystemEditor) DefaultEditor() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	if path, err := exec.LookPath("vim"); err == nil {
		return path
	}
	return ""
}

// StaticEditor always resolves to the same command
type StaticEditor string

// DefaultEditor returns the fixed command
func (s StaticEditor) DefaultEditor() string {
	return string(s)
}

// Prompter asks questions on a line-oriented terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing questions to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Say writes a line of text
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Ask prints question with its default and returns the trimmed answer.
// An empty answer, or end of input, selects def.
func (p *Prompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s |%s| ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s ", question)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Setup collects missing configuration keys interactively
type Setup struct {
	Prompter *Prompter
	Editors  EditorResolver
}

// Ensure prompts for each missing key once and saves the file after each answer.
// It reports whether anything was written.
func Ensure(cfg *Config, s Setup) (bool, error) {
	changed := false

	if cfg.Token == "" {
		if err := s.storeToken(cfg); err != nil {
			return changed, err
		}
		changed = true
	}

	if cfg.Editor == "" {
		if err := s.storeEditor(cfg); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}

func (s Setup) storeToken(cfg *Config) error {
	s.Prompter.Say("You will need a developer token to use this editor.")
	s.Prompter.Say("More information: %s", TokenHelpURL)

	token, err := s.Prompter.Ask("Please enter your developer token:", "none")
	if err != nil {
		return err
	}

	cfg.Token = token
	return cfg.Save()
}

func (s Setup) storeEditor(cfg *Config) error {
	def := ""
	if s.Editors != nil {
		def = s.Editors.DefaultEditor()
	}

	editor, err := s.Prompter.Ask("Please enter the editor command you would like to use:", def)
	if err != nil {
		return err
	}
	if editor == "" {
		return fmt.Errorf("no editor command given and no default editor found")
	}

	cfg.Editor = editor
	return cfg.Save()
}
