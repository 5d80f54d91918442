package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/surfdoc/internal/logging"
	"github.com/yaklabco/surfdoc/internal/ui/pretty"
	"github.com/yaklabco/surfdoc/pkg/render"
	"github.com/yaklabco/surfdoc/pkg/surf"
)

type renderFlags struct {
	format     string
	flavor     string
	title      string
	standalone bool
	maxDepth   int
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a SurfDoc file to stdout",
		Long: `Render a single SurfDoc file to HTML, markdown, or styled terminal output.

The markdown renderer degrades directives to plain markdown, keeping all
content. Unknown directives pass through verbatim.

Examples:
  surfdoc render landing.surf                     # Terminal output
  surfdoc render landing.surf --format html       # HTML fragment
  surfdoc render landing.surf --format html --standalone  # Full page
  surfdoc render landing.surf --format markdown   # Markdown degradation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "term", "output format: html, markdown, term")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "prose markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title for standalone HTML output")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap HTML output in a full page")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "container nesting limit (0 = default)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	logger := logging.Default()

	format := render.Format(flags.format)
	if !format.IsValid() {
		return fmt.Errorf("unknown format %q; valid formats: html, markdown, term", flags.format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var parseOpts []surf.Option
	if flags.maxDepth > 0 {
		parseOpts = append(parseOpts, surf.WithMaxDepth(flags.maxDepth))
	}

	result := surf.Parse(string(data), parseOpts...)

	// Diagnostics go to stderr; rendering is total, so output still follows.
	for _, diag := range result.Diagnostics {
		logger.Warn(diag.Message,
			logging.FieldPath, path,
			logging.FieldCode, diag.Code,
			logging.FieldSeverity, diag.Severity,
		)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := render.Render(result.Document, render.Config{
		Format:     format,
		Flavor:     flags.flavor,
		Standalone: flags.standalone,
		Meta: render.PageMeta{
			SourcePath: path,
			Title:      flags.title,
		},
		Color: pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()),
	})

	fmt.Fprint(cmd.OutOrStdout(), out)

	if result.HasErrors() {
		return ErrIssuesFound
	}

	return nil
}
