// pkg/api/stats_v1.go
package api

// ClusterStatsV1 is the stable JSON schema for one cluster's statistics.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClusterStatsV1 struct {
	Cluster    int     `json:"cluster"`
	Matches    int     `json:"matches"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"` // percentage strictly above the run threshold
}

// StatsReportV1 wraps the per-cluster statistics of one threshold run.
type StatsReportV1 struct {
	Organism  string           `json:"organism"`
	Threshold float64          `json:"threshold"`
	Clusters  []ClusterStatsV1 `json:"clusters"`
}
