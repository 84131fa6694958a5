package application

import (
	"context"
	"runtime"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll runs every rule concurrently against the shared read-only
// input. Each goroutine writes only its own result slot, so the report is
// identical to a sequential run.
func EvaluateAll(ctx context.Context, in *rules.Input, rs []rules.Rule) (*domain.Report, error) {
	results := make([]domain.RuleResult, len(rs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range rs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.Evaluate(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.BuildReport(in.Stats, results), nil
}
