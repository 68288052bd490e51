package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/evned/internal/config"
	"github.com/gerunddev/evned/internal/editor"
	"github.com/gerunddev/evned/internal/logger"
	"github.com/gerunddev/evned/internal/markup"
	"github.com/gerunddev/evned/internal/notestore"
	"github.com/gerunddev/evned/internal/session"
	"github.com/gerunddev/evned/internal/tui"
	"github.com/gerunddev/evned/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	editMode bool
	sandbox  bool
	debug    bool
)

// rootCmd composes a new note, or with --edit looks up existing ones
var rootCmd = &cobra.Command{
	Use:   "evned [title] [tags]",
	Short: "Write notes in your own editor and publish them as rich notes",
	Long: `evned opens your editor on a blank markdown file, converts what you write
to note markup and creates a note with the given title and comma-separated tags.

With --edit it searches your notes for the title and lets you pick one.`,
	Example: `  evned "Groceries" "home,errands"
  evned --edit Groceries
  evned render draft.md`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := session.ModeCreate
		if editMode {
			mode = session.ModeEdit
		}
		return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, mode)
	},
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&editMode, "edit", "e", false, "Search for notes matching the title instead of creating one")
	rootCmd.Flags().BoolVar(&sandbox, "sandbox", false, "Use the sandbox note service for this run")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func run(ctx context.Context, stdin io.Reader, out, errOut io.Writer, args []string, mode session.Mode) error {
	in := bufio.NewReader(stdin)

	l := logger.NewWithLevel(errOut, level())

	cfg, err := loadConfig(in, out, l)
	if err != nil {
		return err
	}
	if sandbox {
		cfg.Sandbox = true
	}

	// The log file is only known once the config is read
	if cfg.LogFile != "" {
		path, err := cfg.LogPath()
		if err != nil {
			return err
		}
		fl, closeFile, err := logger.NewFileLogger(path, level())
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer closeFile()
		l = fl
	}
	l.ConfigLoaded(config.ConfigPath(), cfg.BaseURL())

	s := &session.Session{
		Editor:   editor.New(cfg.Editor, l),
		Renderer: markup.New(),
		Notes:    notestore.NewHTTPClient(cfg.BaseURL(), cfg.Token, notestore.WithLogger(l)),
		Chooser:  newChooser(stdin, out, in),
		Out:      out,
		Log:      l,
	}

	return s.Run(ctx, session.NewDraft(args, time.Now()), mode)
}

// loadConfig reads the config file and runs the one-time setup for missing keys
func loadConfig(in io.Reader, out io.Writer, l *logger.Logger) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	changed, err := config.Ensure(cfg, config.Setup{
		Prompter: config.NewPrompter(in, out),
		Editors:  config.SystemEditor{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete setup: %w", err)
	}
	if changed {
		l.SetupPrompted(config.ConfigPath())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func level() log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// newChooser uses the table picker when both streams are a terminal and a
// numbered menu read from in otherwise.
func newChooser(stdin io.Reader, out io.Writer, in io.Reader) tui.Chooser {
	if isTerminal(stdin) && isTerminal(out) {
		return tui.TableChooser{}
	}
	return tui.LineChooser{In: in, Out: out}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
