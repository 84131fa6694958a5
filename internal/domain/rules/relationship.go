package rules

import "github.com/rtighilt/MARS/internal/domain"

// sharedRule emits one verdict per ordered pair of distinct services whose
// extracted lists intersect. Reports keep one of (A,B) and (B,A).
type sharedRule struct {
	id      domain.RuleID
	extract func(ms domain.Microservice) []string
}

func SharedDependencies() Rule {
	return sharedRule{
		id:      domain.RuleSharedDependencies,
		extract: func(ms domain.Microservice) []string { return ms.Dependencies },
	}
}

func SharedPersistence() Rule {
	return sharedRule{
		id:      domain.RuleSharedPersistence,
		extract: func(ms domain.Microservice) []string { return ms.Code.Databases.Datasources },
	}
}

func (r sharedRule) ID() domain.RuleID { return r.id }

func (r sharedRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: r.id}
	services := in.System.Microservices

	for _, a := range services {
		for _, b := range services {
			if a.Name == b.Name {
				continue
			}
			shared := intersect(r.extract(a), r.extract(b))
			if len(shared) == 0 {
				continue
			}
			res.Verdicts = append(res.Verdicts, domain.Verdict{
				Rule:     r.id,
				Entity:   a.Name,
				Evidence: domain.PairEvidence{From: a.Name, To: b.Name, Shared: shared},
			})
		}
	}
	return res
}
