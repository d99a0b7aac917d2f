package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/mwpack/internal/cluster"
	"github.com/imamik/mwpack/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard asks for the cluster description.
	runWizard = config.RunWizard

	// writeClusterConfig writes the config to a file.
	writeClusterConfig = config.WriteClusterConfig
)

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	cfg, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeClusterConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("mwpack - GPU cluster capacity memo packager")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("This wizard describes one compute node and the leaf-spine fabric.")
	fmt.Println("Defaults describe a 5 MW cluster of 8-GPU nodes.")
	fmt.Println()
}

// printInitSuccess prints where the config went and what it solves to.
func printInitSuccess(outputPath string, cfg *config.ClusterConfig) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Cluster Summary")
	fmt.Println("---------------")
	fmt.Printf("  IT cap:         %.0f W\n", cfg.ITCapW)
	fmt.Printf("  Node power:     %.0f W (%d GPUs)\n", cfg.Node.PowerW(), cfg.Node.GPUCount)
	fmt.Printf("  Leaf:           %d ports (%d host, %d uplink)\n", cfg.Fabric.Leaf.Ports, cfg.Fabric.Leaf.HostPorts, cfg.Fabric.Leaf.UplinkPorts)
	fmt.Printf("  Spine:          %d ports\n", cfg.Fabric.Spine.Ports)
	if report, err := cluster.SolveMaxNodes(cfg); err == nil {
		fmt.Printf("  Max nodes:      %d (%d GPUs)\n", report.Nodes, report.GPUs)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Build the artifact:")
	fmt.Printf("     mwpack build --memo memo.md --config %s\n", outputPath)
	fmt.Println()
}
