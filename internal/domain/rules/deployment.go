package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rtighilt/MARS/internal/domain"
)

const apiVersionToken = "apiVersion"

type multipleInstancesRule struct{}

// MultipleInstancesPerHost flags services without a container build file.
// Whether the system declares a compose file is attached as context only.
func MultipleInstancesPerHost() Rule { return multipleInstancesRule{} }

func (multipleInstancesRule) ID() domain.RuleID { return domain.RuleMultipleInstances }

func (multipleInstancesRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: domain.RuleMultipleInstances}

	for _, ms := range in.System.Microservices {
		if len(ms.Deployment.DockerFiles) > 0 {
			continue
		}
		res.Verdicts = append(res.Verdicts, domain.Verdict{
			Rule:     domain.RuleMultipleInstances,
			Entity:   ms.Name,
			Evidence: domain.DockerEvidence{HasDockerFile: false},
		})
	}

	hasCompose := false
	for _, f := range in.System.ConfigFiles {
		if isComposeFile(f) {
			hasCompose = true
			break
		}
	}
	res.Verdicts = append(res.Verdicts, domain.Verdict{
		Rule:   domain.RuleMultipleInstances,
		Entity: domain.SystemEntity,
		Evidence: domain.AdvisoryEvidence{
			Present: hasCompose,
			Note:    "system has a docker-compose file; services listed here may share a host",
		},
	})
	return res
}

func isComposeFile(path string) bool {
	base := strings.ToLower(filepath.Base(filepath.ToSlash(path)))
	return strings.HasPrefix(base, "docker-compose") || base == "compose.yml" || base == "compose.yaml"
}

type apiVersioningRule struct{}

// NoAPIVersioning reads each service's configuration files and flags the
// service when a readable file lacks "apiVersion". Unreadable files are
// skipped with a warning. The system verdict is the opposite test: any
// system configuration file containing "apiVersion" marks the system as
// versioned, without suppressing service verdicts.
func NoAPIVersioning() Rule { return apiVersioningRule{} }

func (apiVersioningRule) ID() domain.RuleID { return domain.RuleNoAPIVersioning }

func (apiVersioningRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: domain.RuleNoAPIVersioning}
	if in.Contents == nil {
		res.Warnings = append(res.Warnings, domain.Warning{
			Rule:    domain.RuleNoAPIVersioning,
			Entity:  domain.SystemEntity,
			Message: "no content reader configured; rule skipped",
		})
		return res
	}

	for _, ms := range in.System.Microservices {
		ev := domain.VersioningEvidence{}
		for _, f := range ms.Config.ConfigFiles {
			content, err := in.Contents.ReadContent(f)
			if err != nil {
				ev.UnreadableFiles = append(ev.UnreadableFiles, f)
				res.Warnings = append(res.Warnings, unreadable(ms.Name, f, err))
				continue
			}
			if !strings.Contains(content, apiVersionToken) {
				ev.UnversionedFiles = append(ev.UnversionedFiles, f)
			}
		}
		if len(ev.UnversionedFiles) == 0 {
			continue
		}
		res.Verdicts = append(res.Verdicts, domain.Verdict{Rule: domain.RuleNoAPIVersioning, Entity: ms.Name, Evidence: ev})
	}

	versioned := false
	for _, f := range in.System.ConfigFiles {
		content, err := in.Contents.ReadContent(f)
		if err != nil {
			res.Warnings = append(res.Warnings, unreadable(domain.SystemEntity, f, err))
			continue
		}
		if strings.Contains(content, apiVersionToken) {
			versioned = true
			break
		}
	}
	res.Verdicts = append(res.Verdicts, domain.Verdict{
		Rule:   domain.RuleNoAPIVersioning,
		Entity: domain.SystemEntity,
		Evidence: domain.AdvisoryEvidence{
			Present: versioned,
			Note:    "system uses API versioning; services listed here do not",
		},
	})
	return res
}

func unreadable(entity, file string, err error) domain.Warning {
	return domain.Warning{
		Rule:    domain.RuleNoAPIVersioning,
		Entity:  entity,
		Message: fmt.Sprintf("skipping unreadable config file %s: %v", file, err),
	}
}
