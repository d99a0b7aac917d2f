package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/imamik/mwpack/internal/apperr"
)

// ValidateClusterConfig turns a generic decoded document into a validated
// ClusterConfig. Missing keys, wrongly typed values, out-of-range values and
// fabric invariant violations are all validation errors.
func ValidateClusterConfig(payload any) (*ClusterConfig, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return nil, apperr.Validationf("config must be an object")
	}

	d := &decoder{}
	cfg := &ClusterConfig{
		ITCapW: d.number(root, "", "it_cap_w"),
	}

	if node := d.object(root, "", "node"); node != nil {
		cfg.Node = NodeConfig{
			GPUCount:        d.integer(node, "node", "gpu_count"),
			GPUPowerW:       d.number(node, "node", "gpu_power_w"),
			CPUPowerW:       d.number(node, "node", "cpu_power_w"),
			BaseboardPowerW: d.number(node, "node", "baseboard_power_w"),
			NICPowerW:       d.number(node, "node", "nic_power_w"),
			StoragePowerW:   d.number(node, "node", "storage_power_w"),
			OtherPowerW:     d.number(node, "node", "other_power_w"),
		}
	}

	if fabric := d.object(root, "", "fabric"); fabric != nil {
		cfg.Fabric = FabricConfig{
			HostPortsPerNode:      d.integer(fabric, "fabric", "host_ports_per_node"),
			HostLinkGbps:          d.number(fabric, "fabric", "host_link_gbps"),
			UplinkGbps:            d.number(fabric, "fabric", "uplink_gbps"),
			OpticsPowerWPerUplink: d.number(fabric, "fabric", "optics_power_w_per_uplink"),
		}
		if leaf := d.object(fabric, "fabric", "leaf"); leaf != nil {
			cfg.Fabric.Leaf = LeafConfig{
				Ports:       d.integer(leaf, "fabric.leaf", "ports"),
				HostPorts:   d.integer(leaf, "fabric.leaf", "host_ports"),
				UplinkPorts: d.integer(leaf, "fabric.leaf", "uplink_ports"),
				PowerW:      d.number(leaf, "fabric.leaf", "power_w"),
			}
		}
		if spine := d.object(fabric, "fabric", "spine"); spine != nil {
			cfg.Fabric.Spine = SpineConfig{
				Ports:  d.integer(spine, "fabric.spine", "ports"),
				PowerW: d.number(spine, "fabric.spine", "power_w"),
			}
		}
	}

	// Range checks on a half-decoded document would only repeat the
	// missing-key errors with less useful messages.
	if len(d.errs) > 0 {
		return nil, apperr.Validation(errors.Join(d.errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decoder collects presence and type errors while reading a generic map.
type decoder struct {
	errs []error
}

func keyPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func (d *decoder) lookup(m map[string]any, parent, key string) (any, bool) {
	v, ok := m[key]
	if !ok {
		d.errs = append(d.errs, fmt.Errorf("missing required key: %s", keyPath(parent, key)))
	}
	return v, ok
}

func (d *decoder) object(m map[string]any, parent, key string) map[string]any {
	v, ok := d.lookup(m, parent, key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		d.errs = append(d.errs, fmt.Errorf("%s must be an object", keyPath(parent, key)))
		return nil
	}
	return obj
}

func (d *decoder) number(m map[string]any, parent, key string) float64 {
	v, ok := d.lookup(m, parent, key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			break
		}
		return n
	}
	d.errs = append(d.errs, fmt.Errorf("%s must be numeric", keyPath(parent, key)))
	return 0
}

func (d *decoder) integer(m map[string]any, parent, key string) int {
	v, ok := d.lookup(m, parent, key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	}
	d.errs = append(d.errs, fmt.Errorf("%s must be an integer", keyPath(parent, key)))
	return 0
}
