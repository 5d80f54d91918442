package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/surfdoc/internal/logging"
	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/config"
	"github.com/yaklabco/surfdoc/pkg/validate"
)

type rulesFlags struct {
	codeFormat string
	format     string
}

const formatJSON = "json"

// codeInfo represents a diagnostic code in JSON output.
type codeInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// lexicalCodes covers the scanner and attribute parser diagnostics, which
// are not validator rules but share the stable code space.
func lexicalCodes() []codeInfo {
	return []codeInfo{
		{
			Code:        string(ast.CodeUnterminatedDirective),
			Name:        "unterminated-directive",
			Description: "A directive fence is opened but never closed before end of input.",
		},
		{
			Code:        string(ast.CodeInvalidAttrSyntax),
			Name:        "invalid-attribute-syntax",
			Description: "An attribute string does not parse as bracketed key=value pairs.",
		},
		{
			Code:        string(ast.CodeDuplicateAttribute),
			Name:        "duplicate-attribute",
			Description: "The same attribute key appears more than once on a directive.",
		},
	}
}

// allCodes returns every stable diagnostic code with its metadata.
func allCodes() []codeInfo {
	infos := lexicalCodes()
	for _, rule := range validate.DefaultRegistry.Rules() {
		infos = append(infos, codeInfo{
			Code:        string(rule.Code()),
			Name:        rule.Name(),
			Description: rule.Description(),
		})
	}
	for i := range infos {
		infos[i].Severity = string(ast.SeverityFor(ast.Code(infos[i].Code)))
	}
	return infos
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List diagnostic codes",
		Long: `List the stable diagnostic codes with their names, descriptions,
and fixed severities. Codes below SD100 are lexical; the rest are
validator rules.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := allCodes()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputCodesJSON(cmd, infos)
			}

			// Default to text output.
			logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("diagnostic codes")

			codeFormat := config.CodeFormat(flags.codeFormat)

			for _, info := range infos {
				identifier := config.FormatCode(codeFormat, info.Code, info.Name)

				logger.Info(identifier,
					logging.FieldSeverity, info.Severity,
					logging.FieldDescription, info.Description,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.codeFormat, "code-format", "combined",
		"code identifier format in output: id, name, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputCodesJSON outputs the codes as a JSON array.
func outputCodesJSON(cmd *cobra.Command, infos []codeInfo) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding codes: %w", err)
	}
	return nil
}
