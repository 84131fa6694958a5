package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rtighilt/MARS/internal/adapters/outbound/config"
	"github.com/rtighilt/MARS/internal/adapters/outbound/content"
	"github.com/rtighilt/MARS/internal/adapters/outbound/gitrepo"
	"github.com/rtighilt/MARS/internal/adapters/outbound/logging"
	"github.com/rtighilt/MARS/internal/adapters/outbound/lookup"
	"github.com/rtighilt/MARS/internal/adapters/outbound/metamodel"
	"github.com/rtighilt/MARS/internal/adapters/outbound/tui"
	"github.com/rtighilt/MARS/internal/application"
	"github.com/rtighilt/MARS/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	var (
		metamodelPath string
		projectPath   string
		jsonOutput    bool
		only          []string
		skip          []string
		failOn        int
	)

	cmd := &cobra.Command{
		Use:   "detect [metamodel.json]",
		Short: "Detect antipatterns in a metamodel",
		Long: "Evaluate every antipattern rule against a metamodel document and print the report " +
			"grouped by rule category. Lookup tables and settings come from .mars.yaml in --path.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if metamodelPath != "" && metamodelPath != args[0] {
					return usageError(errors.New("metamodel given both as argument and --metamodel"))
				}
				metamodelPath = args[0]
			}
			if metamodelPath == "" {
				return usageError(errors.New("a metamodel path is required (--metamodel)"))
			}
			if err := checkRuleIDs(append(append([]string{}, only...), skip...)); err != nil {
				return err
			}

			log, err := newLogger(cmd, projectPath)
			if err != nil {
				return err
			}

			svc := newDetectService(log)
			report, err := svc.Detect(cmd.Context(), application.DetectRequest{
				MetamodelPath: metamodelPath,
				ProjectPath:   projectPath,
				Only:          only,
				Skip:          skip,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if failOn > 0 && report.TotalFindings() >= failOn {
				return fmt.Errorf("%w: %d findings (--fail-on %d)", errFindings, report.TotalFindings(), failOn)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&metamodelPath, "metamodel", "m", "", "Path to the metamodel JSON document")
	cmd.Flags().StringVarP(&projectPath, "path", "p", ".", "Project directory holding .mars.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Run only these rule ids (comma-separated)")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Skip these rule ids (comma-separated)")
	cmd.Flags().IntVar(&failOn, "fail-on", 0, "Exit with code 4 when total findings reach this number (0 disables)")

	return cmd
}

func newDetectService(log logrus.FieldLogger) *application.DetectService {
	return application.NewDetectService(
		config.New(),
		lookup.New(),
		metamodel.New(),
		func(root string) domain.ContentReader { return content.New(root) },
		gitrepo.NewInfo(),
		log,
	)
}

// newLogger builds the stderr logger from the project's logging settings and
// the --log-level override.
func newLogger(cmd *cobra.Command, projectPath string) (*logrus.Logger, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return logging.New(cfg.Logging, cmd.ErrOrStderr()), nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
