package rules_test

import (
	"errors"
	"os"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
)

func testTables() domain.LookupTables {
	return domain.LookupTables{
		domain.TableServiceDiscovery: {ID: domain.TableServiceDiscovery, Tokens: []string{"eureka", "consul"}},
		domain.TableConfiguration:    {ID: domain.TableConfiguration, Tokens: []string{"spring-cloud-config", "etcd"}},
		domain.TableGateway:          {ID: domain.TableGateway, Tokens: []string{"gateway", "zuul"}},
		domain.TableLogging:          {ID: domain.TableLogging, Tokens: []string{"logstash", "fluentd"}},
		domain.TableMonitoring:       {ID: domain.TableMonitoring, Tokens: []string{"prometheus", "micrometer"}},
		domain.TableCICD:             {ID: domain.TableCICD, Tokens: []string{"jenkins", "travis"}},
		domain.TableCICDFolders:      {ID: domain.TableCICDFolders, Tokens: []string{".github", ".gitlab"}},
		domain.TableCircuitBreaker:   {ID: domain.TableCircuitBreaker, Tokens: []string{"hystrix", "resilience4j"}},
		domain.TableProgramming:      {ID: domain.TableProgramming, Tokens: []string{"java", "go"}},
		domain.TableHealthcheck:      {ID: domain.TableHealthcheck, Tokens: []string{"actuator"}},
	}
}

// memContents is an in-memory domain.ContentReader.
type memContents map[string]string

func (m memContents) ReadContent(path string) (string, error) {
	c, ok := m[path]
	if !ok {
		return "", errors.Join(os.ErrNotExist, errors.New(path))
	}
	return c, nil
}

func service(name string) domain.Microservice {
	return domain.Microservice{Name: name, Locs: 100, NbFiles: 10, Language: "java"}
}

func newInput(sys domain.System) *rules.Input {
	tables := testTables()
	stats, err := domain.ComputeStats(sys, tables.Table(domain.TableCICDFolders))
	if err != nil {
		panic(err)
	}
	return &rules.Input{
		System:     sys,
		Stats:      stats,
		Tables:     tables,
		Thresholds: domain.DefaultConfig().Thresholds,
		Matcher:    domain.SubstringMatcher{},
		References: domain.SubstringMatcher{},
		Contents:   memContents{},
	}
}

func entitiesOf(res domain.RuleResult) []string {
	var names []string
	for _, v := range res.Verdicts {
		if !v.IsAdvisory() {
			names = append(names, v.Entity)
		}
	}
	return names
}

func advisoryOf(res domain.RuleResult) (domain.AdvisoryEvidence, bool) {
	for _, v := range res.Verdicts {
		if a, ok := v.Evidence.(domain.AdvisoryEvidence); ok {
			return a, true
		}
	}
	return domain.AdvisoryEvidence{}, false
}
