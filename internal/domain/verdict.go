package domain

// RuleID identifies one antipattern rule.
type RuleID string

const (
	RuleNanoService            RuleID = "nano_service"
	RuleMegaService            RuleID = "mega_service"
	RuleHardcodedEndpoints     RuleID = "hardcoded_endpoints"
	RuleManualConfiguration    RuleID = "manual_configuration"
	RuleNoAPIGateway           RuleID = "no_api_gateway"
	RuleLocalLogging           RuleID = "local_logging"
	RuleInsufficientMonitoring RuleID = "insufficient_monitoring"
	RuleNoCICD                 RuleID = "no_ci_cd"
	RuleNoHealthcheck          RuleID = "no_healthcheck"
	RuleTimeouts               RuleID = "timeouts"
	RuleMultipleInstances      RuleID = "multiple_instances_per_host"
	RuleNoAPIVersioning        RuleID = "no_api_versioning"
	RuleSharedDependencies     RuleID = "shared_dependencies"
	RuleSharedPersistence      RuleID = "shared_persistence"
	RuleWrongCuts              RuleID = "wrong_cuts"
	RuleCircularDependencies   RuleID = "circular_dependencies"
)

// RuleCategory groups rules for rendering.
type RuleCategory string

const (
	CategorySize           RuleCategory = "size"
	CategoryInfrastructure RuleCategory = "infrastructure"
	CategoryResilience     RuleCategory = "resilience"
	CategoryDeployment     RuleCategory = "deployment"
	CategoryCoupling       RuleCategory = "coupling"
	CategoryStructure      RuleCategory = "structure"
)

// RuleCategories is the rendering order of categories.
var RuleCategories = []RuleCategory{
	CategorySize,
	CategoryInfrastructure,
	CategoryResilience,
	CategoryDeployment,
	CategoryCoupling,
	CategoryStructure,
}

// RuleInfo is the static description of a rule.
type RuleInfo struct {
	ID          RuleID       `json:"id"`
	Title       string       `json:"title"`
	Category    RuleCategory `json:"category"`
	Description string       `json:"description"`
	// Symmetric rules emit (A,B) and (B,A); reports keep one of the two.
	Symmetric bool `json:"symmetric,omitempty"`
}

// RuleCatalog lists every rule in report order.
var RuleCatalog = []RuleInfo{
	{ID: RuleNanoService, Title: "Nano services", Category: CategorySize,
		Description: "LOC and file count both below 0.5x the system average"},
	{ID: RuleMegaService, Title: "Mega services", Category: CategorySize,
		Description: "LOC and file count both above 1.5x the system average"},
	{ID: RuleHardcodedEndpoints, Title: "Hardcoded endpoints", Category: CategoryInfrastructure,
		Description: "literal HTTP endpoints found in code"},
	{ID: RuleManualConfiguration, Title: "Manual configuration", Category: CategoryInfrastructure,
		Description: "configuration files present"},
	{ID: RuleNoAPIGateway, Title: "No API gateway", Category: CategoryInfrastructure,
		Description: "no API gateway tool among dependencies"},
	{ID: RuleLocalLogging, Title: "Local logging", Category: CategoryInfrastructure,
		Description: "no distributed logging tool among dependencies"},
	{ID: RuleInsufficientMonitoring, Title: "Insufficient monitoring", Category: CategoryInfrastructure,
		Description: "no monitoring tool among dependencies"},
	{ID: RuleNoCICD, Title: "No CI/CD", Category: CategoryInfrastructure,
		Description: "no CI/CD tool among dependencies"},
	{ID: RuleNoHealthcheck, Title: "No healthcheck", Category: CategoryInfrastructure,
		Description: "no healthcheck tool among dependencies"},
	{ID: RuleTimeouts, Title: "Timeouts", Category: CategoryResilience,
		Description: "fallbacks without circuit breaker, or hand-rolled timeouts"},
	{ID: RuleMultipleInstances, Title: "Multiple instances per host", Category: CategoryDeployment,
		Description: "service declares no container build file"},
	{ID: RuleNoAPIVersioning, Title: "No API versioning", Category: CategoryDeployment,
		Description: "configuration files without apiVersion"},
	{ID: RuleSharedDependencies, Title: "Shared dependencies", Category: CategoryCoupling,
		Description: "two services declare the same dependency", Symmetric: true},
	{ID: RuleSharedPersistence, Title: "Shared persistence", Category: CategoryCoupling,
		Description: "two services use the same data source", Symmetric: true},
	{ID: RuleWrongCuts, Title: "Wrong cuts", Category: CategoryStructure,
		Description: "service in an accepted language imports one outside that set"},
	{ID: RuleCircularDependencies, Title: "Circular dependencies", Category: CategoryStructure,
		Description: "two services import each other", Symmetric: true},
}

// LookupRule returns the catalog entry for id.
func LookupRule(id RuleID) (RuleInfo, bool) {
	for _, r := range RuleCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return RuleInfo{}, false
}

// RuleIDs returns every catalog id in report order.
func RuleIDs() []string {
	ids := make([]string, len(RuleCatalog))
	for i, r := range RuleCatalog {
		ids[i] = string(r.ID)
	}
	return ids
}

// Evidence is a rule-specific verdict payload.
type Evidence interface {
	isEvidence()
}

// Verdict is one rule's finding for one entity. Never mutated once built.
type Verdict struct {
	Rule     RuleID   `json:"rule"`
	Entity   string   `json:"entity"`
	Evidence Evidence `json:"evidence"`
}

// SizeEvidence explains a nano/mega verdict.
type SizeEvidence struct {
	Locs          int `json:"locs"`
	NbFiles       int `json:"nb_files"`
	RequiredLocs  int `json:"required_locs"`
	RequiredFiles int `json:"required_files"`
}

// ToolEvidence explains a tool-absence family verdict.
type ToolEvidence struct {
	HasTool bool            `json:"has_tool"`
	Tools   []string        `json:"tools,omitempty"`
	Found   []string        `json:"found,omitempty"`
	Signals map[string]bool `json:"signals,omitempty"`
}

// TimeoutEvidence explains a timeout verdict.
type TimeoutEvidence struct {
	HasCircuitBreaker  bool `json:"has_circuit_breaker"`
	HasTimeoutMethods  bool `json:"has_timeout_methods"`
	HasTimeoutImports  bool `json:"has_timeout_imports"`
	HasFallbackMethods bool `json:"has_fallback_methods"`
}

// PairEvidence explains a relationship verdict between two services.
type PairEvidence struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Shared []string `json:"shared,omitempty"`
}

// DockerEvidence explains a multiple-instances-per-host verdict.
type DockerEvidence struct {
	HasDockerFile bool `json:"has_docker_file"`
}

// VersioningEvidence explains a no-API-versioning verdict.
type VersioningEvidence struct {
	HasAPIVersioning bool     `json:"has_api_versioning"`
	UnversionedFiles []string `json:"unversioned_files"`
	UnreadableFiles  []string `json:"unreadable_files,omitempty"`
}

// AdvisoryEvidence is system-level context attached to a rule. It never
// counts as a finding and never suppresses per-service verdicts.
type AdvisoryEvidence struct {
	Present bool   `json:"present"`
	Note    string `json:"note"`
}

func (SizeEvidence) isEvidence()       {}
func (ToolEvidence) isEvidence()       {}
func (TimeoutEvidence) isEvidence()    {}
func (PairEvidence) isEvidence()       {}
func (DockerEvidence) isEvidence()     {}
func (VersioningEvidence) isEvidence() {}
func (AdvisoryEvidence) isEvidence()   {}

// IsAdvisory reports whether v carries context rather than a finding.
func (v Verdict) IsAdvisory() bool {
	_, ok := v.Evidence.(AdvisoryEvidence)
	return ok
}

// Warning records a per-entity problem a rule recovered from.
type Warning struct {
	Rule    RuleID `json:"rule"`
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

// RuleResult is everything one rule evaluator produced.
type RuleResult struct {
	Rule     RuleID    `json:"rule"`
	Verdicts []Verdict `json:"verdicts"`
	Warnings []Warning `json:"warnings,omitempty"`
}
