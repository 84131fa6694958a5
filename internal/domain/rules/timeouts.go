package rules

import "github.com/rtighilt/MARS/internal/domain"

type timeoutRule struct{}

// Timeouts flags a service when
//
//	(no circuit-breaker tool AND fallback methods) OR (timeout imports OR timeout methods)
//
// The system verdict only records whether a circuit breaker is declared at
// system level.
func Timeouts() Rule { return timeoutRule{} }

func (timeoutRule) ID() domain.RuleID { return domain.RuleTimeouts }

func (timeoutRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: domain.RuleTimeouts}
	table := in.Tables.Table(domain.TableCircuitBreaker)

	for _, ms := range in.System.Microservices {
		ev := domain.TimeoutEvidence{
			HasCircuitBreaker:  len(table.Find(ms.Dependencies, in.Matcher)) > 0,
			HasTimeoutImports:  domain.ContainsFold(ms.Code.Imports, "timeout"),
			HasTimeoutMethods:  domain.ContainsFold(ms.Code.Methods, "timeout"),
			HasFallbackMethods: domain.ContainsFold(ms.Code.Methods, "fallback"),
		}
		if (!ev.HasCircuitBreaker && ev.HasFallbackMethods) || (ev.HasTimeoutImports || ev.HasTimeoutMethods) {
			res.Verdicts = append(res.Verdicts, domain.Verdict{Rule: domain.RuleTimeouts, Entity: ms.Name, Evidence: ev})
		}
	}

	res.Verdicts = append(res.Verdicts, domain.Verdict{
		Rule:   domain.RuleTimeouts,
		Entity: domain.SystemEntity,
		Evidence: domain.AdvisoryEvidence{
			Present: len(table.Find(in.System.Dependencies, in.Matcher)) > 0,
			Note:    "system declares a circuit breaker",
		},
	})
	return res
}
