package domain_test

import (
	"testing"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMetamodelValidate(t *testing.T) {
	tests := []struct {
		name     string
		services []domain.Microservice
		want     string
	}{
		{"no services", nil, "no microservices"},
		{"empty name", []domain.Microservice{{Name: ""}}, "empty name"},
		{"reserved name", []domain.Microservice{{Name: "system"}}, "reserved"},
		{"duplicate", []domain.Microservice{{Name: "a"}, {Name: "a"}}, `"a" appears more than once`},
		{"negative locs", []domain.Microservice{{Name: "a", Locs: -1}}, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.Metamodel{System: domain.System{Microservices: tt.services}}
			err := m.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestMetamodelValidate_OK(t *testing.T) {
	m := &domain.Metamodel{System: domain.System{Microservices: []domain.Microservice{{Name: "a"}, {Name: "b"}}}}
	assert.NoError(t, m.Validate())
}

func TestSystem_ServiceIndex(t *testing.T) {
	sys := domain.System{Microservices: []domain.Microservice{{Name: "a", Language: "java"}, {Name: "b", Language: "go"}}}

	idx := sys.ServiceIndex()

	assert.Len(t, idx, 2)
	assert.Equal(t, "go", idx["b"].Language)
	assert.Equal(t, []string{"a", "b"}, sys.ServiceNames())
}
