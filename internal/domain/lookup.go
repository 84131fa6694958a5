package domain

// TableID names a lookup table of known tools or technologies.
type TableID string

const (
	TableServiceDiscovery TableID = "service_discovery"
	TableConfiguration    TableID = "configuration"
	TableGateway          TableID = "gateway"
	TableLogging          TableID = "logging"
	TableMonitoring       TableID = "monitoring"
	TableCICD             TableID = "cicd"
	TableCICDFolders      TableID = "cicd_folders"
	TableCircuitBreaker   TableID = "circuit_breaker"
	TableProgramming      TableID = "programming"
	TableHealthcheck      TableID = "healthcheck"
)

// AllTables lists every table a run requires.
var AllTables = []TableID{
	TableServiceDiscovery,
	TableConfiguration,
	TableGateway,
	TableLogging,
	TableMonitoring,
	TableCICD,
	TableCICDFolders,
	TableCircuitBreaker,
	TableProgramming,
	TableHealthcheck,
}

// FileName is the newline-delimited file a table is loaded from.
func (id TableID) FileName() string { return string(id) + ".txt" }

// LookupTable is the read-only token list for one table.
type LookupTable struct {
	ID     TableID  `json:"id"`
	Tokens []string `json:"tokens"`
}

// Find returns the distinct table tokens matching any of subjects, in table
// order.
func (t LookupTable) Find(subjects []string, m Matcher) []string {
	var found []string
	for _, tok := range t.Tokens {
		for _, s := range subjects {
			if m.Match(tok, s) {
				found = append(found, tok)
				break
			}
		}
	}
	return found
}

// LookupTables holds every loaded table, keyed by id.
type LookupTables map[TableID]LookupTable

// Table returns the table for id, or an empty table when it was never loaded.
func (lt LookupTables) Table(id TableID) LookupTable {
	if t, ok := lt[id]; ok {
		return t
	}
	return LookupTable{ID: id}
}
