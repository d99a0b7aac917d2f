package config

import (
	"errors"
	"fmt"

	"github.com/imamik/mwpack/internal/apperr"
)

// Validate checks value ranges and the fabric port invariants. All problems
// are reported together.
func (c *ClusterConfig) Validate() error {
	var errs []error

	if c.ITCapW <= 0 {
		errs = append(errs, errors.New("it_cap_w must be > 0"))
	}

	errs = append(errs, c.Node.validate()...)
	errs = append(errs, c.Fabric.validate()...)

	return apperr.Validation(errors.Join(errs...))
}

func (n NodeConfig) validate() []error {
	var errs []error

	if n.GPUCount < 1 {
		errs = append(errs, errors.New("node.gpu_count must be >= 1"))
	}

	positive := []struct {
		key   string
		value float64
	}{
		{"node.gpu_power_w", n.GPUPowerW},
		{"node.cpu_power_w", n.CPUPowerW},
		{"node.baseboard_power_w", n.BaseboardPowerW},
		{"node.nic_power_w", n.NICPowerW},
		{"node.storage_power_w", n.StoragePowerW},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0", f.key))
		}
	}

	if n.OtherPowerW < 0 {
		errs = append(errs, errors.New("node.other_power_w must be >= 0"))
	}

	return errs
}

func (f FabricConfig) validate() []error {
	var errs []error

	if f.HostPortsPerNode < 1 {
		errs = append(errs, errors.New("fabric.host_ports_per_node must be >= 1"))
	}
	if f.HostLinkGbps <= 0 {
		errs = append(errs, errors.New("fabric.host_link_gbps must be > 0"))
	}
	if f.UplinkGbps <= 0 {
		errs = append(errs, errors.New("fabric.uplink_gbps must be > 0"))
	}
	if f.OpticsPowerWPerUplink < 0 {
		errs = append(errs, errors.New("fabric.optics_power_w_per_uplink must be >= 0"))
	}

	leaf := f.Leaf
	if leaf.Ports < 1 {
		errs = append(errs, errors.New("fabric.leaf.ports must be >= 1"))
	}
	if leaf.HostPorts < 1 {
		errs = append(errs, errors.New("fabric.leaf.host_ports must be >= 1"))
	}
	if leaf.UplinkPorts < 1 {
		errs = append(errs, errors.New("fabric.leaf.uplink_ports must be >= 1"))
	}
	if leaf.PowerW <= 0 {
		errs = append(errs, errors.New("fabric.leaf.power_w must be > 0"))
	}

	if f.Spine.Ports < 1 {
		errs = append(errs, errors.New("fabric.spine.ports must be >= 1"))
	}
	if f.Spine.PowerW <= 0 {
		errs = append(errs, errors.New("fabric.spine.power_w must be > 0"))
	}

	// Port invariants only make sense once the counts themselves are sane.
	if len(errs) > 0 {
		return errs
	}

	if !leaf.LeafPortsFit() {
		errs = append(errs, fmt.Errorf("fabric.leaf.host_ports + fabric.leaf.uplink_ports must be <= fabric.leaf.ports (%d + %d > %d)",
			leaf.HostPorts, leaf.UplinkPorts, leaf.Ports))
	}
	if leaf.HostPorts < f.HostPortsPerNode {
		errs = append(errs, fmt.Errorf("fabric.leaf.host_ports must be >= fabric.host_ports_per_node (%d < %d)",
			leaf.HostPorts, f.HostPortsPerNode))
	} else if leaf.HostPorts%f.HostPortsPerNode != 0 {
		errs = append(errs, fmt.Errorf("fabric.leaf.host_ports must be divisible by fabric.host_ports_per_node (%d %% %d != 0)",
			leaf.HostPorts, f.HostPortsPerNode))
	}

	return errs
}
