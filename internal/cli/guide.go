package cli

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/when/docs"
	"github.com/aidanlsb/when/internal/ui"
)

const phraseGuidePath = "guide/phrases.md"

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain which phrases are recognized",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := fs.ReadFile(docs.FS, phraseGuidePath)
		if err != nil {
			return handleError(ErrInternal, fmt.Errorf("failed to read guide: %w", err), "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"path": phraseGuidePath, "markdown": string(content)}, nil)
			return nil
		}

		out := cmd.OutOrStdout()
		if !isTerminal(out) {
			fmt.Fprint(out, string(content))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(content), ui.NewDisplayContext().MarkdownWidth())
		if err != nil {
			return handleError(ErrInternal, fmt.Errorf("failed to render guide: %w", err), "")
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
