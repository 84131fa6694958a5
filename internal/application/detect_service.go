package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"github.com/sirupsen/logrus"
)

// DetectRequest selects what one detection run reads and which rules it runs.
type DetectRequest struct {
	// MetamodelPath is the metamodel JSON document. Required.
	MetamodelPath string
	// ProjectPath holds .mars.yaml; relative tools_dir and source_root
	// resolve against it. Defaults to ".".
	ProjectPath string
	Only        []string
	Skip        []string
}

// ContentReaderFactory builds a reader rooted at the directory configuration
// files are resolved against.
type ContentReaderFactory func(root string) domain.ContentReader

// DetectService orchestrates the detection pipeline:
// load config → load lookup tables → load metamodel → stats → rules → report.
type DetectService struct {
	configLoader    domain.ConfigLoader
	lookupLoader    domain.LookupLoader
	metamodelLoader domain.MetamodelLoader
	contents        ContentReaderFactory
	git             domain.GitInfo
	log             logrus.FieldLogger
}

func NewDetectService(
	configLoader domain.ConfigLoader,
	lookupLoader domain.LookupLoader,
	metamodelLoader domain.MetamodelLoader,
	contents ContentReaderFactory,
	git domain.GitInfo,
	log logrus.FieldLogger,
) *DetectService {
	return &DetectService{
		configLoader:    configLoader,
		lookupLoader:    lookupLoader,
		metamodelLoader: metamodelLoader,
		contents:        contents,
		git:             git,
		log:             log,
	}
}

func (s *DetectService) Detect(ctx context.Context, req DetectRequest) (*domain.Report, error) {
	projectPath := req.ProjectPath
	if projectPath == "" {
		projectPath = "."
	}

	// 0. Load and validate config
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Resolve rule selection before touching any input
	selected, err := rules.Select(req.Only, append(append([]string{}, req.Skip...), cfg.DisabledRules...))
	if err != nil {
		return nil, err
	}

	matcher, err := domain.NewMatcher(cfg.Matcher)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	refs, err := domain.NewMatcher(cfg.ReferenceMatcher)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	// 2. Load lookup tables
	toolsDir := resolve(projectPath, cfg.ToolsDir)
	tables, err := s.lookupLoader.Load(toolsDir)
	if err != nil {
		return nil, fmt.Errorf("loading lookup tables from %s: %w", toolsDir, err)
	}

	// 3. Load metamodel
	model, err := s.metamodelLoader.Load(req.MetamodelPath)
	if err != nil {
		return nil, err
	}

	// 4. Aggregate statistics
	stats, err := domain.ComputeStats(model.System, tables.Table(domain.TableCICDFolders))
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"services": stats.NbServices,
		"rules":    len(selected),
		"matcher":  cfg.Matcher,
	}).Debug("evaluating metamodel")

	// 5. Run rules
	sourceRoot := projectPath
	if cfg.SourceRoot != "" {
		sourceRoot = resolve(projectPath, cfg.SourceRoot)
	}
	in := &rules.Input{
		System:     model.System,
		Stats:      stats,
		Tables:     tables,
		Thresholds: cfg.Thresholds,
		Matcher:    matcher,
		References: refs,
	}
	if s.contents != nil {
		in.Contents = s.contents(sourceRoot)
	}

	report, err := EvaluateAll(ctx, in, selected)
	if err != nil {
		return nil, err
	}

	// 6. Attach run metadata
	report.Source = req.MetamodelPath
	report.Timestamp = time.Now()
	if s.git != nil && s.git.IsGitRepo(sourceRoot) {
		if hash, err := s.git.CommitHash(sourceRoot); err == nil {
			report.CommitHash = hash
		}
	}

	for _, w := range report.Warnings {
		s.log.WithFields(logrus.Fields{"rule": w.Rule, "entity": w.Entity}).Warn(w.Message)
	}
	for _, id := range report.Evaluated {
		s.log.WithField("rule", id).Debugf("%d finding(s)", len(report.Findings(id)))
	}

	return report, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
