package cluster

import (
	"math"
	"math/bits"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/config"
)

// maxSearchNodes bounds the binary search over node counts.
const maxSearchNodes = 1 << 40

// NodePowerW returns the power draw of one node in watts.
func NodePowerW(cfg *config.ClusterConfig) float64 {
	return cfg.Node.PowerW()
}

// ceilDiv returns ceil(a / b) for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// mulInt returns a*b for non-negative a and b, or false if the product does
// not fit in an int.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// EvaluateCluster sizes the fabric and power budget for exactly nodes
// compute nodes.
func EvaluateCluster(cfg *config.ClusterConfig, nodes int) (*Report, error) {
	if nodes < 0 {
		return nil, apperr.Validationf("nodes must be >= 0")
	}

	fabric := cfg.Fabric
	leaf := fabric.Leaf
	spine := fabric.Spine

	hostPorts, ok := mulInt(nodes, fabric.HostPortsPerNode)
	if !ok {
		return nil, apperr.Validationf("host port count overflows for %d nodes", nodes)
	}
	var leaves, uplinksTotal, spines int
	if hostPorts > 0 {
		leaves = ceilDiv(hostPorts, leaf.HostPorts)
		if uplinksTotal, ok = mulInt(leaves, leaf.UplinkPorts); !ok {
			return nil, apperr.Validationf("uplink count overflows for %d leaves", leaves)
		}
		if uplinksTotal > 0 {
			spines = ceilDiv(uplinksTotal, spine.Ports)
		}
	}

	pNodeTotal := float64(nodes) * NodePowerW(cfg)
	pSwitching := float64(leaves)*leaf.PowerW + float64(spines)*spine.PowerW
	pOptics := float64(uplinksTotal) * fabric.OpticsPowerWPerUplink
	pTotal := pNodeTotal + pSwitching + pOptics

	var oversubscription float64
	if uplinksTotal > 0 {
		oversubscription = (float64(hostPorts) * fabric.HostLinkGbps) /
			(float64(uplinksTotal) * fabric.UplinkGbps)
	}

	gpus, ok := mulInt(nodes, cfg.Node.GPUCount)
	if !ok {
		return nil, apperr.Validationf("gpu count overflows for %d nodes", nodes)
	}
	var gpusPerMW float64
	if cfg.ITCapW > 0 {
		gpusPerMW = float64(gpus) / (cfg.ITCapW / 1_000_000.0)
	}

	node := cfg.Node
	return &Report{
		Feasible:              pTotal <= cfg.ITCapW,
		Status:                StatusOK,
		ITCapW:                cfg.ITCapW,
		Nodes:                 nodes,
		GPUs:                  gpus,
		GPUsPerMW:             gpusPerMW,
		Leaves:                leaves,
		Spines:                spines,
		HostPorts:             hostPorts,
		UplinksTotal:          uplinksTotal,
		OversubscriptionRatio: oversubscription,
		PNodeTotalW:           pNodeTotal,
		PSwitchingW:           pSwitching,
		POpticsW:              pOptics,
		PTotalW:               pTotal,
		Inputs: Inputs{
			Node:   &node,
			Fabric: &fabric,
		},
	}, nil
}

// SolveMaxNodes returns the report for the largest node count whose total
// power does not exceed the IT cap. The zero-node cluster always fits, so
// the result is always feasible; its status tells whether any node fit.
func SolveMaxNodes(cfg *config.ClusterConfig) (*Report, error) {
	nodePower := NodePowerW(cfg)
	if nodePower <= 0 {
		return nil, apperr.Validationf("computed node power must be > 0")
	}

	// Fabric power is non-negative, so the cap alone bounds the node count.
	upper := math.Floor(cfg.ITCapW / nodePower)
	if upper > maxSearchNodes {
		return nil, apperr.Validationf("it_cap_w / node power allows more than %d nodes", maxSearchNodes)
	}

	// Port and GPU counts grow with the node count, so if the upper bound
	// evaluates without overflow every smaller trial does too.
	if _, err := EvaluateCluster(cfg, int(upper)); err != nil {
		return nil, err
	}

	lo, hi, best := 0, int(upper), 0
	for lo <= hi {
		mid := lo + (hi-lo)/2
		trial, err := EvaluateCluster(cfg, mid)
		if err != nil {
			return nil, err
		}
		if trial.PTotalW <= cfg.ITCapW {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	report, err := EvaluateCluster(cfg, best)
	if err != nil {
		return nil, err
	}
	report.Feasible = true
	report.Status = StatusOK
	if best == 0 {
		report.Status = StatusNoFeasibleNonzero
	}

	if err := checkInvariants(report); err != nil {
		return nil, err
	}
	return report, nil
}

// checkInvariants guards against a solver defect producing a plausible but
// wrong report.
func checkInvariants(r *Report) error {
	if r.PTotalW > r.ITCapW {
		return apperr.Invariantf("p_total_w %g exceeds it_cap_w %g", r.PTotalW, r.ITCapW)
	}
	if r.Inputs.Fabric == nil {
		return apperr.Invariantf("report carries no fabric inputs")
	}
	leaf := r.Inputs.Fabric.Leaf
	if !leaf.LeafPortsFit() {
		return apperr.Invariantf("leaf host+uplink ports %d+%d exceed radix %d",
			leaf.HostPorts, leaf.UplinkPorts, leaf.Ports)
	}
	return nil
}
