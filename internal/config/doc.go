// Package config defines the cluster capacity configuration consumed by the
// solver, together with its loader and validator.
//
// A [ClusterConfig] is produced either by [LoadClusterConfig] (JSON or YAML
// file) or by the interactive [RunWizard]. Both paths end in
// [ClusterConfig.Validate], so a value handed to the solver always satisfies
// the fabric port invariants.
package config
