// Package metamodel reads the metamodel JSON document produced by the
// external metamodel generator.
package metamodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rtighilt/MARS/internal/domain"
)

// JSONLoader implements domain.MetamodelLoader.
type JSONLoader struct{}

func New() *JSONLoader {
	return &JSONLoader{}
}

// Load reads, decodes and validates the metamodel at path. Every failure
// wraps domain.ErrInvalidInput.
func (l *JSONLoader) Load(path string) (*domain.Metamodel, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no metamodel path given", domain.ErrInvalidInput)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrInvalidInput, path, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode parses a metamodel document and checks required fields and
// structural invariants.
func Decode(data []byte) (*domain.Metamodel, error) {
	var doc document
	if err := json.Unmarshal(bytes.TrimSpace(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", domain.ErrInvalidInput, err)
	}
	if doc.System == nil {
		return nil, missing("system")
	}
	if doc.System.Microservices == nil {
		return nil, missing("system.microservices")
	}

	sys := domain.System{
		Dependencies: doc.System.Dependencies,
		ConfigFiles:  doc.System.ConfigFiles,
		HTTP:         doc.System.HTTP,
		Folders:      doc.System.Folders,
	}
	for i, ws := range *doc.System.Microservices {
		ms, err := ws.toDomain()
		if err != nil {
			return nil, fmt.Errorf("microservices[%d]: %w", i, err)
		}
		sys.Microservices = append(sys.Microservices, ms)
	}

	m := &domain.Metamodel{System: sys}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing required field %q", domain.ErrInvalidInput, field)
}

// document mirrors domain.Metamodel with pointer fields so that absent keys
// can be told apart from empty values.
type document struct {
	System *systemDoc `json:"system"`
}

type systemDoc struct {
	Microservices *[]serviceDoc `json:"microservices"`
	Dependencies  []string      `json:"dependencies"`
	ConfigFiles   []string      `json:"config_files"`
	HTTP          []string      `json:"http"`
	Folders       []string      `json:"folders"`
}

type serviceDoc struct {
	Name         *string   `json:"name"`
	Locs         *flexInt  `json:"locs"`
	NbFiles      *flexInt  `json:"nb_files"`
	Language     *string   `json:"language"`
	Dependencies *[]string `json:"dependencies"`
	Config       *struct {
		ConfigFiles *[]string `json:"config_files"`
	} `json:"config"`
	Code *struct {
		HTTP        *[]string `json:"http"`
		Imports     *[]string `json:"imports"`
		Annotations *[]string `json:"annotations"`
		Methods     *[]string `json:"methods"`
		Databases   *struct {
			Datasources *[]string `json:"datasources"`
		} `json:"databases"`
	} `json:"code"`
	Deployment *struct {
		DockerFiles *[]string `json:"docker_files"`
	} `json:"deployment"`
}

func (s serviceDoc) toDomain() (domain.Microservice, error) {
	var ms domain.Microservice
	if s.Name == nil {
		return ms, missing("name")
	}
	if s.Locs == nil {
		return ms, missing("locs")
	}
	if s.NbFiles == nil {
		return ms, missing("nb_files")
	}
	if s.Language == nil {
		return ms, missing("language")
	}
	if s.Dependencies == nil {
		return ms, missing("dependencies")
	}
	if s.Config == nil || s.Config.ConfigFiles == nil {
		return ms, missing("config.config_files")
	}
	if s.Code == nil {
		return ms, missing("code")
	}
	for _, f := range []struct {
		name  string
		value *[]string
	}{
		{"code.http", s.Code.HTTP},
		{"code.imports", s.Code.Imports},
		{"code.annotations", s.Code.Annotations},
		{"code.methods", s.Code.Methods},
	} {
		if f.value == nil {
			return ms, missing(f.name)
		}
	}
	if s.Code.Databases == nil || s.Code.Databases.Datasources == nil {
		return ms, missing("code.databases.datasources")
	}
	if s.Deployment == nil || s.Deployment.DockerFiles == nil {
		return ms, missing("deployment.docker_files")
	}

	ms = domain.Microservice{
		Name:         *s.Name,
		Locs:         int(*s.Locs),
		NbFiles:      int(*s.NbFiles),
		Language:     *s.Language,
		Dependencies: *s.Dependencies,
		Config:       domain.Config{ConfigFiles: *s.Config.ConfigFiles},
		Code: domain.Code{
			HTTP:        *s.Code.HTTP,
			Imports:     *s.Code.Imports,
			Annotations: *s.Code.Annotations,
			Methods:     *s.Code.Methods,
			Databases:   domain.Databases{Datasources: *s.Code.Databases.Datasources},
		},
		Deployment: domain.Deployment{DockerFiles: *s.Deployment.DockerFiles},
	}
	return ms, nil
}

// flexInt accepts a JSON number or a string holding an integer, since
// generators disagree on how counters are emitted.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", b)
	}
	*f = flexInt(n)
	return nil
}
