package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/mwpack/internal/apperr"
)

// WizardResult holds the raw answers from the init wizard.
type WizardResult struct {
	ITCapMW string

	GPUCount        string
	GPUPowerW       string
	CPUPowerW       string
	BaseboardPowerW string
	NICPowerW       string
	StoragePowerW   string
	OtherPowerW     string

	HostPortsPerNode      string
	HostLinkGbps          string
	UplinkGbps            string
	OpticsPowerWPerUplink string

	LeafPorts       string
	LeafHostPorts   string
	LeafUplinkPorts string
	LeafPowerW      string

	SpinePorts  string
	SpinePowerW string
}

// DefaultWizardResult returns answers describing an 8-GPU node on a
// 64-port leaf/spine fabric under a 5 MW cap.
func DefaultWizardResult() *WizardResult {
	return &WizardResult{
		ITCapMW:               "5",
		GPUCount:              "8",
		GPUPowerW:             "700",
		CPUPowerW:             "350",
		BaseboardPowerW:       "120",
		NICPowerW:             "80",
		StoragePowerW:         "60",
		OtherPowerW:           "40",
		HostPortsPerNode:      "1",
		HostLinkGbps:          "400",
		UplinkGbps:            "400",
		OpticsPowerWPerUplink: "8",
		LeafPorts:             "64",
		LeafHostPorts:         "32",
		LeafUplinkPorts:       "32",
		LeafPowerW:            "450",
		SpinePorts:            "64",
		SpinePowerW:           "500",
	}
}

// RunWizard asks for a cluster capacity plan interactively.
func RunWizard(ctx context.Context) (*ClusterConfig, error) {
	result := DefaultWizardResult()

	form := huh.NewForm(
		huh.NewGroup(
			numberInput("Facility IT power cap (MW)", "Power available to compute and network equipment", &result.ITCapMW, validatePositive),
		),

		huh.NewGroup(
			numberInput("GPUs per node", "", &result.GPUCount, validatePositiveInt),
			numberInput("GPU power (W)", "Per GPU", &result.GPUPowerW, validatePositive),
			numberInput("CPU power (W)", "Per node", &result.CPUPowerW, validatePositive),
			numberInput("Baseboard power (W)", "", &result.BaseboardPowerW, validatePositive),
			numberInput("NIC power (W)", "", &result.NICPowerW, validatePositive),
			numberInput("Storage power (W)", "", &result.StoragePowerW, validatePositive),
			numberInput("Other power (W)", "Fans, BMC, anything else", &result.OtherPowerW, validateNonNegative),
		).Title("Node"),

		huh.NewGroup(
			numberInput("Host ports per node", "", &result.HostPortsPerNode, validatePositiveInt),
			numberInput("Host link speed (Gbps)", "", &result.HostLinkGbps, validatePositive),
			numberInput("Uplink speed (Gbps)", "", &result.UplinkGbps, validatePositive),
			numberInput("Optics power per uplink (W)", "", &result.OpticsPowerWPerUplink, validateNonNegative),
		).Title("Fabric"),

		huh.NewGroup(
			numberInput("Leaf ports", "Total radix", &result.LeafPorts, validatePositiveInt),
			numberInput("Leaf host ports", "Ports facing compute nodes", &result.LeafHostPorts, validatePositiveInt),
			numberInput("Leaf uplink ports", "Ports facing spines", &result.LeafUplinkPorts, validatePositiveInt),
			numberInput("Leaf power (W)", "", &result.LeafPowerW, validatePositive),
			numberInput("Spine ports", "", &result.SpinePorts, validatePositiveInt),
			numberInput("Spine power (W)", "", &result.SpinePowerW, validatePositive),
		).Title("Switches"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result.ToConfig()
}

func numberInput(title, description string, value *string, validate func(string) error) *huh.Input {
	in := huh.NewInput().
		Title(title).
		Value(value).
		Validate(validate)
	if description != "" {
		in = in.Description(description)
	}
	return in
}

// ToConfig parses the answers and validates the resulting config.
func (r *WizardResult) ToConfig() (*ClusterConfig, error) {
	p := &answerParser{}

	cfg := &ClusterConfig{
		ITCapW: p.float("it cap", r.ITCapMW) * 1_000_000,
		Node: NodeConfig{
			GPUCount:        p.int("gpu count", r.GPUCount),
			GPUPowerW:       p.float("gpu power", r.GPUPowerW),
			CPUPowerW:       p.float("cpu power", r.CPUPowerW),
			BaseboardPowerW: p.float("baseboard power", r.BaseboardPowerW),
			NICPowerW:       p.float("nic power", r.NICPowerW),
			StoragePowerW:   p.float("storage power", r.StoragePowerW),
			OtherPowerW:     p.float("other power", r.OtherPowerW),
		},
		Fabric: FabricConfig{
			HostPortsPerNode:      p.int("host ports per node", r.HostPortsPerNode),
			HostLinkGbps:          p.float("host link speed", r.HostLinkGbps),
			UplinkGbps:            p.float("uplink speed", r.UplinkGbps),
			OpticsPowerWPerUplink: p.float("optics power", r.OpticsPowerWPerUplink),
			Leaf: LeafConfig{
				Ports:       p.int("leaf ports", r.LeafPorts),
				HostPorts:   p.int("leaf host ports", r.LeafHostPorts),
				UplinkPorts: p.int("leaf uplink ports", r.LeafUplinkPorts),
				PowerW:      p.float("leaf power", r.LeafPowerW),
			},
			Spine: SpineConfig{
				Ports:  p.int("spine ports", r.SpinePorts),
				PowerW: p.float("spine power", r.SpinePowerW),
			},
		},
	}
	if p.err != nil {
		return nil, apperr.Validation(p.err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// answerParser keeps the first parse error so ToConfig reads linearly.
type answerParser struct {
	err error
}

func (p *answerParser) float(name, s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v
}

func (p *answerParser) int(name, s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateNonNegative(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if v < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}
