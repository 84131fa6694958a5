package rules_test

import (
	"testing"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeouts_Predicate(t *testing.T) {
	tests := []struct {
		name    string
		deps    []string
		imports []string
		methods []string
		flagged bool
	}{
		{"nothing", nil, nil, []string{"getOrders"}, false},
		{"fallback without breaker", nil, nil, []string{"ordersFallback"}, true},
		{"fallback with breaker", []string{"io.github.resilience4j:core"}, nil, []string{"ordersFallback"}, false},
		{"timeout method with breaker", []string{"hystrix-core"}, nil, []string{"setReadTimeout"}, true},
		{"timeout import", nil, []string{"java.util.concurrent.TimeoutException"}, nil, true},
		{"timeout and fallback with breaker", []string{"hystrix-core"}, nil, []string{"orderFallback", "withTimeout"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := service("svc")
			ms.Dependencies = tt.deps
			ms.Code.Imports = tt.imports
			ms.Code.Methods = tt.methods

			res := rules.Timeouts().Evaluate(newInput(domain.System{Microservices: []domain.Microservice{ms}}))

			assert.Equal(t, tt.flagged, len(entitiesOf(res)) == 1)
		})
	}
}

func TestTimeouts_RecordsEverySignal(t *testing.T) {
	ms := service("svc")
	ms.Code.Methods = []string{"callFallback", "connectTimeout"}

	res := rules.Timeouts().Evaluate(newInput(domain.System{Microservices: []domain.Microservice{ms}}))

	require.NotEmpty(t, res.Verdicts)
	assert.Equal(t, domain.TimeoutEvidence{HasTimeoutMethods: true, HasFallbackMethods: true}, res.Verdicts[0].Evidence)
}

func TestTimeouts_SystemAdvisory(t *testing.T) {
	sys := domain.System{
		Microservices: []domain.Microservice{service("svc")},
		Dependencies:  []string{"com.netflix.hystrix:hystrix-core"},
	}

	adv, ok := advisoryOf(rules.Timeouts().Evaluate(newInput(sys)))

	require.True(t, ok)
	assert.True(t, adv.Present)
}
