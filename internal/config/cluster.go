package config

// ClusterConfig is the validated capacity plan input.
type ClusterConfig struct {
	// ITCapW is the facility IT power cap in watts.
	ITCapW float64 `json:"it_cap_w"`

	Node   NodeConfig   `json:"node"`
	Fabric FabricConfig `json:"fabric"`
}

// NodeConfig describes the power draw of one compute node.
type NodeConfig struct {
	GPUCount        int     `json:"gpu_count"`
	GPUPowerW       float64 `json:"gpu_power_w"`
	CPUPowerW       float64 `json:"cpu_power_w"`
	BaseboardPowerW float64 `json:"baseboard_power_w"`
	NICPowerW       float64 `json:"nic_power_w"`
	StoragePowerW   float64 `json:"storage_power_w"`
	OtherPowerW     float64 `json:"other_power_w"`
}

// FabricConfig describes the leaf-spine network fabric.
type FabricConfig struct {
	HostPortsPerNode      int         `json:"host_ports_per_node"`
	HostLinkGbps          float64     `json:"host_link_gbps"`
	UplinkGbps            float64     `json:"uplink_gbps"`
	OpticsPowerWPerUplink float64     `json:"optics_power_w_per_uplink"`
	Leaf                  LeafConfig  `json:"leaf"`
	Spine                 SpineConfig `json:"spine"`
}

// LeafConfig describes a leaf switch. HostPorts face compute nodes and
// UplinkPorts face spines; together they must fit in Ports.
type LeafConfig struct {
	Ports       int     `json:"ports"`
	HostPorts   int     `json:"host_ports"`
	UplinkPorts int     `json:"uplink_ports"`
	PowerW      float64 `json:"power_w"`
}

// SpineConfig describes a spine switch.
type SpineConfig struct {
	Ports  int     `json:"ports"`
	PowerW float64 `json:"power_w"`
}

// PowerW returns the power draw of a single node in watts.
func (n NodeConfig) PowerW() float64 {
	return float64(n.GPUCount)*n.GPUPowerW +
		n.CPUPowerW +
		n.BaseboardPowerW +
		n.NICPowerW +
		n.StoragePowerW +
		n.OtherPowerW
}

// LeafPortsFit reports whether host and uplink ports fit in the leaf radix.
func (l LeafConfig) LeafPortsFit() bool {
	return l.HostPorts+l.UplinkPorts <= l.Ports
}
