package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/gerunddev/evned/internal/markup"
	"github.com/spf13/cobra"
)

var bodyOnly bool

// renderCmd previews the markup a file would be published as
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Print the note markup for a markdown file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open markdown file: %w", err)
			}
			defer f.Close()
			src = f
		}

		markdown, err := io.ReadAll(src)
		if err != nil {
			return fmt.Errorf("failed to read markdown: %w", err)
		}

		r := markup.New()
		var out string
		if bodyOnly {
			out, err = r.HTML(string(markdown))
		} else {
			out, err = r.Note(string(markdown))
		}
		if err != nil {
			return err
		}

		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVar(&bodyOnly, "body", false, "Print only the XHTML body, without the en-note envelope")
}
