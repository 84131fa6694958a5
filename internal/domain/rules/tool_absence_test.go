package rules_test

import (
	"testing"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/rtighilt/MARS/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoAPIGateway_GatewayDependencyClearsService(t *testing.T) {
	withGateway := service("edge")
	withGateway.Dependencies = []string{"org.springframework.cloud:spring-cloud-gateway:3.1"}
	sys := domain.System{Microservices: []domain.Microservice{withGateway, service("orders")}}

	res := rules.NoAPIGateway().Evaluate(newInput(sys))

	assert.Equal(t, []string{"orders", domain.SystemEntity}, entitiesOf(res))
}

func TestToolRules_MatchesArePerService(t *testing.T) {
	first := service("first")
	first.Dependencies = []string{"io.prometheus:simpleclient"}
	sys := domain.System{Microservices: []domain.Microservice{first, service("second")}}

	res := rules.InsufficientMonitoring().Evaluate(newInput(sys))

	// A tool found for "first" must not carry over to "second".
	assert.Equal(t, []string{"second", domain.SystemEntity}, entitiesOf(res))
}

func TestToolRules_SystemDependenciesClearSystem(t *testing.T) {
	sys := domain.System{
		Microservices: []domain.Microservice{service("a")},
		Dependencies:  []string{"net.logstash.logback:logstash-logback-encoder"},
	}

	res := rules.LocalLogging().Evaluate(newInput(sys))

	assert.Equal(t, []string{"a"}, entitiesOf(res))
}

func TestHardcodedEndpoints_FlagsHTTPLiterals(t *testing.T) {
	a := service("a")
	a.Code.HTTP = []string{"http://orders:8080/api", "http://users:8080"}
	a.Dependencies = []string{"org.netflix.eureka:1.9"}
	sys := domain.System{
		Microservices: []domain.Microservice{a, service("b")},
		HTTP:          []string{"http://gateway"},
	}

	res := rules.HardcodedEndpoints().Evaluate(newInput(sys))

	require.Len(t, res.Verdicts, 2)
	assert.Equal(t, "a", res.Verdicts[0].Entity)
	ev := res.Verdicts[0].Evidence.(domain.ToolEvidence)
	assert.True(t, ev.HasTool, "eureka token must substring-match the dependency")
	assert.Equal(t, []string{"eureka"}, ev.Tools)
	assert.Equal(t, a.Code.HTTP, ev.Found)

	assert.Equal(t, domain.SystemEntity, res.Verdicts[1].Entity)
	assert.False(t, res.Verdicts[1].Evidence.(domain.ToolEvidence).HasTool)
}

func TestManualConfiguration_FlagsConfigFiles(t *testing.T) {
	a := service("a")
	a.Config.ConfigFiles = []string{"a/src/main/resources/application.yml"}
	sys := domain.System{Microservices: []domain.Microservice{a, service("b")}}

	res := rules.ManualConfiguration().Evaluate(newInput(sys))

	assert.Equal(t, []string{"a"}, entitiesOf(res))
}

func TestNoCICD_SystemFolderClearsSystemOnly(t *testing.T) {
	sys := domain.System{
		Microservices: []domain.Microservice{service("a")},
		Folders:       []string{".github", "docs"},
	}

	res := rules.NoCICD().Evaluate(newInput(sys))

	assert.Equal(t, []string{"a"}, entitiesOf(res))
	adv, ok := advisoryOf(res)
	require.True(t, ok)
	assert.True(t, adv.Present)
}

func TestNoCICD_NoFoldersFlagsSystem(t *testing.T) {
	sys := domain.System{Microservices: []domain.Microservice{service("a")}}

	res := rules.NoCICD().Evaluate(newInput(sys))

	assert.Equal(t, []string{"a", domain.SystemEntity}, entitiesOf(res))
	adv, _ := advisoryOf(res)
	assert.False(t, adv.Present)
}

func TestNoHealthcheck_RecordsSignals(t *testing.T) {
	a := service("a")
	a.Code.Imports = []string{"com.example.HealthIndicator"}
	a.Code.Annotations = []string{"@RestController"}
	b := service("b")
	b.Dependencies = []string{"spring-boot-starter-actuator"}
	sys := domain.System{Microservices: []domain.Microservice{a, b}}

	res := rules.NoHealthcheck().Evaluate(newInput(sys))

	assert.Equal(t, []string{"a", domain.SystemEntity}, entitiesOf(res))
	ev := res.Verdicts[0].Evidence.(domain.ToolEvidence)
	assert.Equal(t, map[string]bool{"health_imports": true, "health_annotations": false}, ev.Signals)
	assert.Nil(t, res.Verdicts[1].Evidence.(domain.ToolEvidence).Signals)
}

func TestToolRules_TokenMatcher(t *testing.T) {
	a := service("a")
	a.Dependencies = []string{"gateways-sdk"}
	sys := domain.System{Microservices: []domain.Microservice{a}}

	in := newInput(sys)
	assert.NotContains(t, entitiesOf(rules.NoAPIGateway().Evaluate(in)), "a")

	in.Matcher = domain.TokenMatcher{}
	assert.Contains(t, entitiesOf(rules.NoAPIGateway().Evaluate(in)), "a")
}
