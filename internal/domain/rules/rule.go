package rules

import (
	"fmt"

	"github.com/rtighilt/MARS/internal/domain"
)

// Input is the shared state every rule reads. Nothing in it is written
// during evaluation, so rules may run concurrently without locking.
type Input struct {
	System     domain.System
	Stats      domain.AggregateStats
	Tables     domain.LookupTables
	Thresholds domain.Thresholds

	// Matcher tests lookup-table tokens against dependency strings.
	Matcher domain.Matcher
	// References tests service names against import strings.
	References domain.Matcher
	// Contents reads configuration files for the versioning rule.
	Contents domain.ContentReader
}

// Rule is one independent antipattern evaluator.
type Rule interface {
	ID() domain.RuleID
	Evaluate(in *Input) domain.RuleResult
}

// All returns every rule in catalog order.
func All() []Rule {
	return []Rule{
		NanoService(),
		MegaService(),
		HardcodedEndpoints(),
		ManualConfiguration(),
		NoAPIGateway(),
		LocalLogging(),
		InsufficientMonitoring(),
		NoCICD(),
		NoHealthcheck(),
		Timeouts(),
		MultipleInstancesPerHost(),
		NoAPIVersioning(),
		SharedDependencies(),
		SharedPersistence(),
		WrongCuts(),
		CircularDependencies(),
	}
}

// Select returns the rules of All whose ids are in only (all when only is
// empty) and not in skip. Unknown ids are an error.
func Select(only, skip []string) ([]Rule, error) {
	for _, id := range append(append([]string{}, only...), skip...) {
		if _, ok := domain.LookupRule(domain.RuleID(id)); !ok {
			return nil, fmt.Errorf("%w %q", domain.ErrUnknownRule, id)
		}
	}

	want := toSet(only)
	drop := toSet(skip)

	var out []Rule
	for _, r := range All() {
		id := string(r.ID())
		if len(want) > 0 && !want[id] {
			continue
		}
		if drop[id] {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Evaluate runs rules one after another and builds the report. The
// application layer runs the same rules concurrently.
func Evaluate(in *Input, rs []Rule) *domain.Report {
	results := make([]domain.RuleResult, len(rs))
	for i, r := range rs {
		results[i] = r.Evaluate(in)
	}
	return domain.BuildReport(in.Stats, results)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// entity is the common view of a microservice or the system pseudo-entity
// used by the tool-absence family.
type entity struct {
	name         string
	system       bool
	dependencies []string
	http         []string
	configFiles  []string
	imports      []string
	annotations  []string
	methods      []string
}

// entities lists every microservice followed by the system itself.
func entities(sys domain.System) []entity {
	out := make([]entity, 0, len(sys.Microservices)+1)
	for _, ms := range sys.Microservices {
		out = append(out, serviceEntity(ms))
	}
	return append(out, entity{
		name:         domain.SystemEntity,
		system:       true,
		dependencies: sys.Dependencies,
		http:         sys.HTTP,
		configFiles:  sys.ConfigFiles,
	})
}

func serviceEntity(ms domain.Microservice) entity {
	return entity{
		name:         ms.Name,
		dependencies: ms.Dependencies,
		http:         ms.Code.HTTP,
		configFiles:  ms.Config.ConfigFiles,
		imports:      ms.Code.Imports,
		annotations:  ms.Code.Annotations,
		methods:      ms.Code.Methods,
	}
}

// intersect returns the distinct values of a also present in b, in a's order.
func intersect(a, b []string) []string {
	inB := toSet(b)
	seen := make(map[string]bool)
	var out []string
	for _, v := range a {
		if inB[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
