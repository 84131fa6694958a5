package application_test

import (
	"context"
	"testing"

	"github.com/rtighilt/MARS/internal/application"
	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() *rules.Input {
	sys := domain.System{
		Microservices: []domain.Microservice{
			{Name: "a", Locs: 4000, NbFiles: 200, Language: "java", Dependencies: []string{"lib"},
				Code: domain.Code{Imports: []string{"com.shop.b.Client"}}},
			{Name: "b", Locs: 3000, NbFiles: 150, Language: "java", Dependencies: []string{"lib"},
				Code: domain.Code{Imports: []string{"com.shop.a.Client"}}},
			{Name: "c", Locs: 300, NbFiles: 15, Language: "go"},
		},
	}
	tables := domain.LookupTables{}
	for _, id := range domain.AllTables {
		tables[id] = domain.LookupTable{ID: id}
	}
	stats, _ := domain.ComputeStats(sys, tables.Table(domain.TableCICDFolders))
	return &rules.Input{
		System:     sys,
		Stats:      stats,
		Tables:     tables,
		Thresholds: domain.DefaultConfig().Thresholds,
		Matcher:    domain.SubstringMatcher{},
		References: domain.SubstringMatcher{},
		Contents:   nil,
	}
}

func TestEvaluateAll_MatchesSequential(t *testing.T) {
	in := sampleInput()

	concurrent, err := application.EvaluateAll(context.Background(), in, rules.All())
	require.NoError(t, err)
	sequential := rules.Evaluate(in, rules.All())

	assert.Equal(t, sequential.Evaluated, concurrent.Evaluated)
	assert.Equal(t, sequential.Verdicts, concurrent.Verdicts)
	assert.Equal(t, sequential.Warnings, concurrent.Warnings)
}

func TestEvaluateAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := application.EvaluateAll(ctx, sampleInput(), rules.All())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAll_NoRules(t *testing.T) {
	report, err := application.EvaluateAll(context.Background(), sampleInput(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Evaluated)
	assert.Zero(t, report.TotalFindings())
}
