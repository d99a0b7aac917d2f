package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/imamik/mwpack/internal/util/jsonutil"
)

// DefaultConfigFilename is the file written by the init wizard.
const DefaultConfigFilename = "cluster.yaml"

// Marshal renders cfg as YAML for .yaml/.yml paths and canonical JSON
// otherwise. Keys are the snake_case names accepted by the loader.
func Marshal(cfg *ClusterConfig, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return data, nil
	default:
		return jsonutil.Pretty(cfg)
	}
}

// WriteClusterConfig writes cfg to path in the format implied by its
// extension.
func WriteClusterConfig(cfg *ClusterConfig, path string) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
