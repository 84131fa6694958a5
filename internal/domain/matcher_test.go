package domain_test

import (
	"testing"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstringMatcher(t *testing.T) {
	m := domain.SubstringMatcher{}
	assert.True(t, m.Match("eureka", "org.netflix.eureka:1.9"))
	assert.False(t, m.Match("Eureka", "org.netflix.eureka:1.9"), "matching is case-sensitive")
	assert.False(t, m.Match("", "anything"))
}

func TestExactMatcher(t *testing.T) {
	m := domain.ExactMatcher{}
	assert.True(t, m.Match(".github", ".github"))
	assert.False(t, m.Match(".git", ".github"))
}

func TestTokenMatcher(t *testing.T) {
	m := domain.TokenMatcher{}
	assert.True(t, m.Match("gateway", "spring-cloud-gateway"))
	assert.True(t, m.Match("gateway", "ApiGatewayClient"))
	assert.True(t, m.Match("api-gateway", "com.example.ApiGateway"))
	assert.False(t, m.Match("gateway", "gateways"))
	assert.False(t, m.Match("api-gateway", "gateway-api"))
	assert.False(t, m.Match("--", "spring"))
}

func TestRegexMatcher(t *testing.T) {
	m := &domain.RegexMatcher{}
	assert.True(t, m.Match(`^io\.prometheus`, "io.prometheus:simpleclient"))
	assert.False(t, m.Match(`^prometheus`, "io.prometheus:simpleclient"))
	assert.False(t, m.Match(`([`, "anything"), "invalid patterns never match")
	assert.False(t, m.Match(`([`, "anything"), "cached invalid pattern")
}

func TestNewMatcher(t *testing.T) {
	for _, name := range append([]string{""}, domain.ValidMatchers...) {
		m, err := domain.NewMatcher(name)
		require.NoError(t, err, name)
		assert.NotNil(t, m)
	}

	_, err := domain.NewMatcher("levenshtein")
	assert.ErrorContains(t, err, "unknown matcher")
}

func TestContainsFold(t *testing.T) {
	assert.True(t, domain.ContainsFold([]string{"org.Health.Check"}, "health"))
	assert.False(t, domain.ContainsFold(nil, "health"))
}
