package domain

import (
	"encoding/json"
	"time"
)

// Report aggregates every rule's verdicts for one run. Read-only once built.
type Report struct {
	Source     string
	CommitHash string
	Timestamp  time.Time
	Stats      AggregateStats
	Evaluated  []RuleID
	Verdicts   map[RuleID][]Verdict
	Warnings   []Warning
}

// BuildReport combines independent rule results. Rules appear in catalog
// order regardless of the order results arrive in.
func BuildReport(stats AggregateStats, results []RuleResult) *Report {
	r := &Report{
		Stats:    stats,
		Verdicts: make(map[RuleID][]Verdict, len(results)),
	}
	byID := make(map[RuleID]RuleResult, len(results))
	for _, res := range results {
		byID[res.Rule] = res
	}
	for _, info := range RuleCatalog {
		res, ok := byID[info.ID]
		if !ok {
			continue
		}
		r.Evaluated = append(r.Evaluated, info.ID)
		r.Verdicts[info.ID] = res.Verdicts
		r.Warnings = append(r.Warnings, res.Warnings...)
	}
	return r
}

// Findings returns the non-advisory verdicts of a rule. For symmetric rules
// only the first of (A,B) and (B,A) is kept.
func (r *Report) Findings(id RuleID) []Verdict {
	info, _ := LookupRule(id)
	seen := make(map[[2]string]bool)

	var out []Verdict
	for _, v := range r.Verdicts[id] {
		if v.IsAdvisory() {
			continue
		}
		if info.Symmetric {
			if pair, ok := v.Evidence.(PairEvidence); ok {
				key := pairKey(pair.From, pair.To)
				if seen[key] {
					continue
				}
				seen[key] = true
			}
		}
		out = append(out, v)
	}
	return out
}

// Advisory returns the system-level context attached to a rule, if any.
func (r *Report) Advisory(id RuleID) (AdvisoryEvidence, bool) {
	for _, v := range r.Verdicts[id] {
		if a, ok := v.Evidence.(AdvisoryEvidence); ok {
			return a, true
		}
	}
	return AdvisoryEvidence{}, false
}

// TotalFindings counts deduplicated findings across every evaluated rule.
func (r *Report) TotalFindings() int {
	n := 0
	for _, id := range r.Evaluated {
		n += len(r.Findings(id))
	}
	return n
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// RuleSection is the serialized form of one rule in a report.
type RuleSection struct {
	RuleInfo
	Advisory *AdvisoryEvidence `json:"advisory,omitempty"`
	Verdicts []Verdict         `json:"verdicts"`
}

type reportJSON struct {
	Source        string         `json:"source,omitempty"`
	CommitHash    string         `json:"commit_hash,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	Stats         AggregateStats `json:"stats"`
	TotalFindings int            `json:"total_findings"`
	Rules         []RuleSection  `json:"rules"`
	Warnings      []Warning      `json:"warnings,omitempty"`
}

// Sections returns the deduplicated, catalog-ordered view of the report.
func (r *Report) Sections() []RuleSection {
	sections := make([]RuleSection, 0, len(r.Evaluated))
	for _, id := range r.Evaluated {
		info, _ := LookupRule(id)
		sec := RuleSection{RuleInfo: info, Verdicts: r.Findings(id)}
		if sec.Verdicts == nil {
			sec.Verdicts = []Verdict{}
		}
		if a, ok := r.Advisory(id); ok {
			sec.Advisory = &a
		}
		sections = append(sections, sec)
	}
	return sections
}

// MarshalJSON emits the deduplicated view; raw symmetric duplicates are
// never serialized.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Source:        r.Source,
		CommitHash:    r.CommitHash,
		Timestamp:     r.Timestamp,
		Stats:         r.Stats,
		TotalFindings: r.TotalFindings(),
		Rules:         r.Sections(),
		Warnings:      r.Warnings,
	})
}
