package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/surfdoc/internal/configloader"
	"github.com/yaklabco/surfdoc/internal/logging"
	"github.com/yaklabco/surfdoc/pkg/config"
	"github.com/yaklabco/surfdoc/pkg/runner"
	"github.com/yaklabco/surfdoc/pkg/site"
)

type buildFlags struct {
	ignore []string
	flavor string
	strict bool
}

func newBuildCommand() *cobra.Command {
	var cfg config.Config
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Assemble SurfDoc sites into static HTML",
		Long: `Parse SurfDoc files and assemble their sites into static HTML.

Each document with a site directive becomes a set of pages under the
output directory, written atomically with shared navigation. Documents
without a site directive are skipped.

Examples:
  surfdoc build                       # Build sites from the current directory
  surfdoc build docs/landing.surf     # Build a single document
  surfdoc build -o public             # Write pages under public/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputDir, "output-dir", "o", "", "directory to write pages to (default dist)")
	cmd.Flags().StringVar(&cfg.SiteName, "site-name", "", "override the site name in navigation and titles")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0, "number of parallel page renderers (0 = auto)")
	cmd.Flags().IntVar(&cfg.MaxDepth, "max-depth", 0, "container nesting limit (0 = default)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "prose markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail the build on warnings too")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, cfg *config.Config, flags *buildFlags) error {
	logger := logging.Default()

	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	result, err := runner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		MaxDepth:     finalCfg.MaxDepth,
	})
	if err != nil {
		return errors.Join(errors.New("build run failed"), err)
	}

	var pagesWritten, sitesBuilt int
	var hadErrors, hadWarnings bool

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("skipping unreadable file",
				logging.FieldPath, file.Path,
				logging.FieldError, file.Error,
			)
			hadErrors = true
			continue
		}
		if file.Result == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			logger.Warn(diag.Message,
				logging.FieldPath, file.Path,
				logging.FieldCode, diag.Code,
				logging.FieldSeverity, diag.Severity,
			)
			switch diag.Severity {
			case "error":
				hadErrors = true
			case "warning":
				hadWarnings = true
			}
		}
		if file.Result.HasErrors() {
			logger.Error("not building document with errors", logging.FieldPath, file.Path)
			continue
		}

		out, err := site.Assemble(ctx, file.Result.Document, site.Config{
			SiteName: finalCfg.SiteName,
			Flavor:   string(finalCfg.Flavor),
			Workers:  finalCfg.Workers,
		})
		if err != nil {
			return fmt.Errorf("assemble %s: %w", file.Path, err)
		}
		if len(out.Pages) == 0 {
			logger.Debug("no site in document", logging.FieldPath, file.Path)
			continue
		}

		if err := site.Write(ctx, out, finalCfg.OutputDir); err != nil {
			return fmt.Errorf("write site for %s: %w", file.Path, err)
		}

		sitesBuilt++
		pagesWritten += len(out.Pages)

		logger.Info("built site",
			logging.FieldPath, file.Path,
			logging.FieldOutput, finalCfg.OutputDir,
			logging.FieldPagesRendered, len(out.Pages),
		)
	}

	logger.Info("build finished",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldPagesRendered, pagesWritten,
	)

	if sitesBuilt == 0 && result.Stats.FilesChecked > 0 {
		logger.Warn("no documents contained a site directive")
	}

	if hadErrors || (flags.strict && hadWarnings) {
		return ErrIssuesFound
	}

	return nil
}
