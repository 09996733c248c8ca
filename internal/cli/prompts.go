package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the prompt templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		listPrompts(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func listPrompts(w io.Writer, cfg *config.Config) {
	c := prompt.FromConfig(cfg.Summary.Prompts)

	names := map[int]string{}
	if len(cfg.Summary.Prompts) == 0 {
		for _, n := range []string{"outline", "detailed", "partial"} {
			if idx, err := c.Lookup(n); err == nil {
				names[idx] = n
			}
		}
	}

	for i := range c.Len() {
		tmpl, _ := c.Template(i)
		marks := []string{}
		if i == cfg.Summary.Prompt {
			marks = append(marks, "default")
		}
		if cfg.Summary.ChunkPrompt != nil && i == *cfg.Summary.ChunkPrompt {
			marks = append(marks, "chunks")
		}

		label := fmt.Sprintf("[%d]", i)
		if n, ok := names[i]; ok {
			label += " " + n
		}
		if len(marks) > 0 {
			label += " (" + strings.Join(marks, ", ") + ")"
		}
		fmt.Fprintln(w, bold.Sprint(label))
		fmt.Fprintf(w, "    %s\n\n", strings.TrimSpace(tmpl))
	}
}
