package rules_test

import (
	"testing"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularDependencies_ReportedOncePerPair(t *testing.T) {
	orders, billing := service("orders"), service("billing")
	orders.Code.Imports = []string{"com.shop.billing.client.BillingClient"}
	billing.Code.Imports = []string{"com.shop.orders.api.OrderDto"}
	in := newInput(domain.System{Microservices: []domain.Microservice{orders, billing}})

	raw := rules.CircularDependencies().Evaluate(in)
	assert.Len(t, raw.Verdicts, 2)

	report := rules.Evaluate(in, []rules.Rule{rules.CircularDependencies()})
	findings := report.Findings(domain.RuleCircularDependencies)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.PairEvidence{From: "orders", To: "billing"}, findings[0].Evidence)
}

func TestCircularDependencies_OneWayIsNotCircular(t *testing.T) {
	orders, billing := service("orders"), service("billing")
	orders.Code.Imports = []string{"com.shop.billing.client.BillingClient"}
	in := newInput(domain.System{Microservices: []domain.Microservice{orders, billing}})

	assert.Empty(t, rules.CircularDependencies().Evaluate(in).Verdicts)
}

func TestCircularDependencies_IgnoresSelfImports(t *testing.T) {
	orders := service("orders")
	orders.Code.Imports = []string{"com.shop.orders.domain.Order"}
	in := newInput(domain.System{Microservices: []domain.Microservice{orders, service("billing")}})

	assert.Empty(t, rules.CircularDependencies().Evaluate(in).Verdicts)
}

func TestWrongCuts_CalleeOutsideAcceptedLanguages(t *testing.T) {
	api, legacy, worker := service("api"), service("legacy"), service("worker")
	api.Code.Imports = []string{"legacy/client", "worker/jobs"}
	legacy.Language = "COBOL"
	worker.Language = "Go"
	in := newInput(domain.System{Microservices: []domain.Microservice{api, legacy, worker}})

	res := rules.WrongCuts().Evaluate(in)

	require.Len(t, res.Verdicts, 1)
	assert.Equal(t, domain.PairEvidence{From: "api", To: "legacy"}, res.Verdicts[0].Evidence)
}

func TestWrongCuts_CallerOutsideAcceptedLanguages(t *testing.T) {
	legacy, api := service("legacy"), service("api")
	legacy.Language = "javascript"
	legacy.Code.Imports = []string{"api-client"}
	in := newInput(domain.System{Microservices: []domain.Microservice{legacy, api}})

	assert.Empty(t, rules.WrongCuts().Evaluate(in).Verdicts)
}

func TestReferences_TokenMatcherAvoidsPrefixCollisions(t *testing.T) {
	user, profile := service("user"), service("user-profile")
	user.Code.Imports = []string{"com.shop.user-profile.client"}
	profile.Code.Imports = []string{"com.shop.userprofile.internal"}
	in := newInput(domain.System{Microservices: []domain.Microservice{user, profile}})

	// "user" is a substring of profile's own package name.
	assert.Len(t, rules.CircularDependencies().Evaluate(in).Verdicts, 2)

	in.References = domain.TokenMatcher{}
	assert.Empty(t, rules.CircularDependencies().Evaluate(in).Verdicts)
}
