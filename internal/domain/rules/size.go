package rules

import (
	"math"

	"github.com/rtighilt/MARS/internal/domain"
)

// sizeRule flags services whose LOC and file count are both beyond a
// multiple of the system averages.
type sizeRule struct {
	id        domain.RuleID
	threshold func(domain.Thresholds) domain.Threshold
	outlier   func(value, required int) bool
}

// NanoService flags locs < floor(t*avgLocs) AND nb_files < floor(t*avgFiles).
func NanoService() Rule {
	return sizeRule{
		id:        domain.RuleNanoService,
		threshold: func(t domain.Thresholds) domain.Threshold { return t.Nano },
		outlier:   func(v, req int) bool { return v < req },
	}
}

// MegaService flags locs > floor(t*avgLocs) AND nb_files > floor(t*avgFiles).
func MegaService() Rule {
	return sizeRule{
		id:        domain.RuleMegaService,
		threshold: func(t domain.Thresholds) domain.Threshold { return t.Mega },
		outlier:   func(v, req int) bool { return v > req },
	}
}

func (r sizeRule) ID() domain.RuleID { return r.id }

func (r sizeRule) Evaluate(in *Input) domain.RuleResult {
	res := domain.RuleResult{Rule: r.id}
	t := r.threshold(in.Thresholds)

	requiredLocs := int(math.Floor(t.Loc * in.Stats.AvgLocs))
	requiredFiles := int(math.Floor(t.Files * in.Stats.AvgFiles))

	for _, ms := range in.System.Microservices {
		if !r.outlier(ms.Locs, requiredLocs) || !r.outlier(ms.NbFiles, requiredFiles) {
			continue
		}
		res.Verdicts = append(res.Verdicts, domain.Verdict{
			Rule:   r.id,
			Entity: ms.Name,
			Evidence: domain.SizeEvidence{
				Locs:          ms.Locs,
				NbFiles:       ms.NbFiles,
				RequiredLocs:  requiredLocs,
				RequiredFiles: requiredFiles,
			},
		})
	}
	return res
}
