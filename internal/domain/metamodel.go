package domain

import "fmt"

// SystemEntity is the entity key used for system-wide verdicts.
const SystemEntity = "system"

// Metamodel is the input document describing the analyzed system.
type Metamodel struct {
	System System `json:"system"`
}

// System holds global facts plus every microservice of the analyzed whole.
type System struct {
	Microservices []Microservice `json:"microservices"`
	Dependencies  []string       `json:"dependencies"`
	ConfigFiles   []string       `json:"config_files"`
	HTTP          []string       `json:"http"`
	Folders       []string       `json:"folders"`
}

// Microservice is one service unit. Name is the join key for every
// cross-service rule.
type Microservice struct {
	Name         string     `json:"name"`
	Locs         int        `json:"locs"`
	NbFiles      int        `json:"nb_files"`
	Language     string     `json:"language"`
	Dependencies []string   `json:"dependencies"`
	Config       Config     `json:"config"`
	Code         Code       `json:"code"`
	Deployment   Deployment `json:"deployment"`
}

type Config struct {
	ConfigFiles []string `json:"config_files"`
}

type Code struct {
	HTTP        []string  `json:"http"`
	Imports     []string  `json:"imports"`
	Annotations []string  `json:"annotations"`
	Methods     []string  `json:"methods"`
	Databases   Databases `json:"databases"`
}

type Databases struct {
	Datasources []string `json:"datasources"`
}

type Deployment struct {
	DockerFiles []string `json:"docker_files"`
}

// Validate enforces the structural invariants every rule relies on: at least
// one service, unique non-empty names and non-negative size counters.
func (m *Metamodel) Validate() error {
	if len(m.System.Microservices) == 0 {
		return ErrNoServices
	}
	seen := make(map[string]bool, len(m.System.Microservices))
	for i, ms := range m.System.Microservices {
		if ms.Name == "" {
			return fmt.Errorf("%w: microservices[%d] has an empty name", ErrInvalidInput, i)
		}
		if ms.Name == SystemEntity {
			return fmt.Errorf("%w: microservice name %q is reserved", ErrInvalidInput, SystemEntity)
		}
		if seen[ms.Name] {
			return fmt.Errorf("%w: microservice %q appears more than once", ErrInvalidInput, ms.Name)
		}
		seen[ms.Name] = true
		if ms.Locs < 0 || ms.NbFiles < 0 {
			return fmt.Errorf("%w: microservice %q has negative locs or nb_files", ErrInvalidInput, ms.Name)
		}
	}
	return nil
}

// ServiceIndex maps microservice names to their facts. Built once per run and
// shared read-only by the cross-service rules.
func (s System) ServiceIndex() map[string]*Microservice {
	idx := make(map[string]*Microservice, len(s.Microservices))
	for i := range s.Microservices {
		idx[s.Microservices[i].Name] = &s.Microservices[i]
	}
	return idx
}

// ServiceNames returns the microservice names in declaration order.
func (s System) ServiceNames() []string {
	names := make([]string, len(s.Microservices))
	for i, ms := range s.Microservices {
		names[i] = ms.Name
	}
	return names
}
