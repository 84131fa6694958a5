package domain

// AggregateStats are the system-wide numbers threshold rules compare against.
// Computed once per run and never modified afterwards.
type AggregateStats struct {
	NbServices     int     `json:"nb_services"`
	TotalLocs      int     `json:"total_locs"`
	TotalFiles     int     `json:"total_files"`
	AvgLocs        float64 `json:"avg_locs"`
	AvgFiles       float64 `json:"avg_files"`
	HasCiCdFolders bool    `json:"has_ci_cd_folders"`
}

// ComputeStats sums sizes over every microservice and checks the system
// folders against the CI/CD folder table (exact name match). Averages stay
// real-valued; each threshold rule floors its own product.
func ComputeStats(sys System, cicdFolders LookupTable) (AggregateStats, error) {
	if len(sys.Microservices) == 0 {
		return AggregateStats{}, ErrNoServices
	}

	st := AggregateStats{NbServices: len(sys.Microservices)}
	for _, ms := range sys.Microservices {
		st.TotalLocs += ms.Locs
		st.TotalFiles += ms.NbFiles
	}
	st.AvgLocs = float64(st.TotalLocs) / float64(st.NbServices)
	st.AvgFiles = float64(st.TotalFiles) / float64(st.NbServices)
	st.HasCiCdFolders = len(cicdFolders.Find(sys.Folders, ExactMatcher{})) > 0

	return st, nil
}
