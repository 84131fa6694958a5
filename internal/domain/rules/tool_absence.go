package rules

import (
	"github.com/rtighilt/MARS/internal/domain"
)

// toolRule is the shared shape of the tool-absence family: scan each
// entity's dependencies against one lookup table, extract the entity's
// antipattern evidence, and flag when the predicate holds.
type toolRule struct {
	id    domain.RuleID
	table domain.TableID

	// evidence extracts the facts counted against the entity; nil means none.
	evidence func(e entity) []string
	// flag decides whether the entity gets a verdict.
	flag func(in *Input, e entity, hasTool bool, evidence []string) bool
	// signals records extra per-service booleans; nil means none.
	signals func(e entity) map[string]bool
	// advisory attaches system-level context; nil means none.
	advisory func(in *Input) domain.AdvisoryEvidence
}

func (r toolRule) ID() domain.RuleID { return r.id }

func (r toolRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: r.id}
	table := in.Tables.Table(r.table)

	for _, e := range entities(in.System) {
		tools := table.Find(e.dependencies, in.Matcher)
		hasTool := len(tools) > 0

		var found []string
		if r.evidence != nil {
			found = r.evidence(e)
		}
		if !r.flag(in, e, hasTool, found) {
			continue
		}

		ev := domain.ToolEvidence{HasTool: hasTool, Tools: tools, Found: found}
		if r.signals != nil && !e.system {
			ev.Signals = r.signals(e)
		}
		res.Verdicts = append(res.Verdicts, domain.Verdict{Rule: r.id, Entity: e.name, Evidence: ev})
	}

	if r.advisory != nil {
		res.Verdicts = append(res.Verdicts, domain.Verdict{
			Rule:     r.id,
			Entity:   domain.SystemEntity,
			Evidence: r.advisory(in),
		})
	}
	return res
}

func evidencePresent(_ *Input, _ entity, _ bool, evidence []string) bool {
	return len(evidence) > 0
}

func toolAbsent(_ *Input, _ entity, hasTool bool, _ []string) bool {
	return !hasTool
}

// HardcodedEndpoints flags entities with literal HTTP endpoints, recording
// whether a service-discovery tool was found.
func HardcodedEndpoints() Rule {
	return toolRule{
		id:       domain.RuleHardcodedEndpoints,
		table:    domain.TableServiceDiscovery,
		evidence: func(e entity) []string { return e.http },
		flag:     evidencePresent,
	}
}

// ManualConfiguration flags entities with configuration files, recording
// whether a configuration-management tool was found.
func ManualConfiguration() Rule {
	return toolRule{
		id:       domain.RuleManualConfiguration,
		table:    domain.TableConfiguration,
		evidence: func(e entity) []string { return e.configFiles },
		flag:     evidencePresent,
	}
}

func NoAPIGateway() Rule {
	return toolRule{id: domain.RuleNoAPIGateway, table: domain.TableGateway, flag: toolAbsent}
}

func LocalLogging() Rule {
	return toolRule{id: domain.RuleLocalLogging, table: domain.TableLogging, flag: toolAbsent}
}

func InsufficientMonitoring() Rule {
	return toolRule{id: domain.RuleInsufficientMonitoring, table: domain.TableMonitoring, flag: toolAbsent}
}

// NoCICD flags services without a CI/CD tool. The system itself is only
// flagged when it has neither a CI/CD tool nor a recognized CI/CD folder.
func NoCICD() Rule {
	return toolRule{
		id:    domain.RuleNoCICD,
		table: domain.TableCICD,
		flag: func(in *Input, e entity, hasTool bool, _ []string) bool {
			if e.system {
				return !hasTool && !in.Stats.HasCiCdFolders
			}
			return !hasTool
		},
		advisory: func(in *Input) domain.AdvisoryEvidence {
			return domain.AdvisoryEvidence{
				Present: in.Stats.HasCiCdFolders,
				Note:    "system has CI/CD folders; services listed here have no CI/CD tooling of their own",
			}
		},
	}
}

// NoHealthcheck flags entities without a healthcheck tool. Health-related
// imports and annotations are recorded but do not clear the verdict.
func NoHealthcheck() Rule {
	return toolRule{
		id:    domain.RuleNoHealthcheck,
		table: domain.TableHealthcheck,
		flag:  toolAbsent,
		signals: func(e entity) map[string]bool {
			return map[string]bool{
				"health_imports":     domain.ContainsFold(e.imports, "health"),
				"health_annotations": domain.ContainsFold(e.annotations, "health"),
			}
		},
	}
}
