package rules

import (
	"strings"

	"github.com/rtighilt/MARS/internal/domain"
)

// reference is a directed "from imports to" edge between two services.
type reference struct {
	from, to string
}

// references finds every A→B where one of A's import strings matches B's
// name. A service never references itself. Matching is heuristic: with the
// substring strategy a service named "user" is also found in imports of
// "user-profile".
func references(in *Input) []reference {
	names := in.System.ServiceNames()
	var refs []reference
	for _, ms := range in.System.Microservices {
		for _, name := range names {
			if name == ms.Name {
				continue
			}
			for _, imp := range ms.Code.Imports {
				if in.References.Match(name, imp) {
					refs = append(refs, reference{from: ms.Name, to: name})
					break
				}
			}
		}
	}
	return refs
}

type wrongCutsRule struct{}

// WrongCuts flags A→B when A's language is in the accepted-languages table
// and B's is not.
func WrongCuts() Rule { return wrongCutsRule{} }

func (wrongCutsRule) ID() domain.RuleID { return domain.RuleWrongCuts }

func (wrongCutsRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: domain.RuleWrongCuts}
	languages := in.Tables.Table(domain.TableProgramming).Tokens
	index := in.System.ServiceIndex()

	for _, ref := range references(in) {
		from, to := index[ref.from], index[ref.to]
		if accepted(languages, from.Language) && !accepted(languages, to.Language) {
			res.Verdicts = append(res.Verdicts, domain.Verdict{
				Rule:     domain.RuleWrongCuts,
				Entity:   ref.from,
				Evidence: domain.PairEvidence{From: ref.from, To: ref.to},
			})
		}
	}
	return res
}

// accepted compares languages case-insensitively and exactly, so "java"
// does not accept "javascript".
func accepted(languages []string, lang string) bool {
	for _, l := range languages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}

type circularRule struct{}

// CircularDependencies flags A→B when B→A also exists. Both directions are
// emitted; reports keep one.
func CircularDependencies() Rule { return circularRule{} }

func (circularRule) ID() domain.RuleID { return domain.RuleCircularDependencies }

func (circularRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: domain.RuleCircularDependencies}
	refs := references(in)

	edges := make(map[reference]bool, len(refs))
	for _, ref := range refs {
		edges[ref] = true
	}
	for _, ref := range refs {
		if !edges[reference{from: ref.to, to: ref.from}] {
			continue
		}
		res.Verdicts = append(res.Verdicts, domain.Verdict{
			Rule:     domain.RuleCircularDependencies,
			Entity:   ref.from,
			Evidence: domain.PairEvidence{From: ref.from, To: ref.to},
		})
	}
	return res
}
