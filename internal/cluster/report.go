package cluster

import "github.com/imamik/mwpack/internal/config"

// Status tags a solved report.
type Status string

const (
	// StatusOK means at least one node fits under the cap.
	StatusOK Status = "ok"

	// StatusNoFeasibleNonzero means only the empty cluster fits.
	StatusNoFeasibleNonzero Status = "no_feasible_nonzero"
)

// Report is the sizing of a cluster at one node count. Reports are built
// once and never modified after being returned.
type Report struct {
	Feasible bool    `json:"feasible"`
	Status   Status  `json:"status"`
	ITCapW   float64 `json:"it_cap_w"`

	Nodes     int     `json:"nodes"`
	GPUs      int     `json:"gpus"`
	GPUsPerMW float64 `json:"gpus_per_mw"`

	Leaves       int `json:"leaves"`
	Spines       int `json:"spines"`
	HostPorts    int `json:"host_ports"`
	UplinksTotal int `json:"uplinks_total"`

	// OversubscriptionRatio is host-facing bandwidth over uplink bandwidth.
	// Values above 1 mean hosts can demand more than the uplinks carry.
	OversubscriptionRatio float64 `json:"oversubscription_ratio"`

	PNodeTotalW float64 `json:"p_node_total_w"`
	PSwitchingW float64 `json:"p_switching_w"`
	POpticsW    float64 `json:"p_optics_w"`
	PTotalW     float64 `json:"p_total_w"`

	Inputs Inputs `json:"inputs"`
}

// Inputs echoes the node and fabric description a report was computed from.
// Both are nil in the empty report.
type Inputs struct {
	Node   *config.NodeConfig   `json:"node,omitempty"`
	Fabric *config.FabricConfig `json:"fabric,omitempty"`
}

// EmptyReport returns the report used when no capacity plan is attached.
func EmptyReport() *Report {
	return &Report{
		Feasible: true,
		Status:   StatusNoFeasibleNonzero,
	}
}
