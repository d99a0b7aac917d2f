// Package metrics exposes a capacity report as Prometheus gauges so solver
// results can be scraped through node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/mwpack/internal/cluster"
)

const (
	namespace = "mwpack"
	subsystem = "cluster"
)

// Power components reported under the component label of power_watts.
const (
	ComponentNodes     = "nodes"
	ComponentSwitching = "switching"
	ComponentOptics    = "optics"
	ComponentTotal     = "total"
)

// Gauges holds the report gauges for one registry.
type Gauges struct {
	Nodes                 prometheus.Gauge
	GPUs                  prometheus.Gauge
	GPUsPerMW             prometheus.Gauge
	Leaves                prometheus.Gauge
	Spines                prometheus.Gauge
	HostPorts             prometheus.Gauge
	Uplinks               prometheus.Gauge
	OversubscriptionRatio prometheus.Gauge
	ITCapWatts            prometheus.Gauge
	PowerWatts            *prometheus.GaugeVec
	Feasible              prometheus.Gauge
	Info                  *prometheus.GaugeVec
}

func gauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

// NewGauges creates the gauges and registers them with reg.
func NewGauges(reg prometheus.Registerer) (*Gauges, error) {
	g := &Gauges{
		Nodes:                 gauge("nodes", "Number of compute nodes that fit under the IT cap"),
		GPUs:                  gauge("gpus", "Number of GPUs across all nodes"),
		GPUsPerMW:             gauge("gpus_per_mw", "GPUs per megawatt of IT capacity"),
		Leaves:                gauge("leaves", "Number of leaf switches"),
		Spines:                gauge("spines", "Number of spine switches"),
		HostPorts:             gauge("host_ports", "Number of host-facing leaf ports in use"),
		Uplinks:               gauge("uplinks", "Number of leaf uplinks"),
		OversubscriptionRatio: gauge("oversubscription_ratio", "Host bandwidth divided by uplink bandwidth"),
		ITCapWatts:            gauge("it_cap_watts", "IT power budget in watts"),
		PowerWatts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "power_watts",
				Help:      "Power draw in watts by component",
			},
			[]string{"component"},
		),
		Feasible: gauge("feasible", "Whether the reported cluster fits under the IT cap (1) or not (0)"),
		Info: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "info",
				Help:      "Solver status of the report, always 1",
			},
			[]string{"status"},
		),
	}

	for _, c := range []prometheus.Collector{
		g.Nodes, g.GPUs, g.GPUsPerMW,
		g.Leaves, g.Spines, g.HostPorts, g.Uplinks,
		g.OversubscriptionRatio, g.ITCapWatts, g.PowerWatts,
		g.Feasible, g.Info,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return g, nil
}

// Set copies r into the gauges.
func (g *Gauges) Set(r *cluster.Report) {
	g.Nodes.Set(float64(r.Nodes))
	g.GPUs.Set(float64(r.GPUs))
	g.GPUsPerMW.Set(r.GPUsPerMW)
	g.Leaves.Set(float64(r.Leaves))
	g.Spines.Set(float64(r.Spines))
	g.HostPorts.Set(float64(r.HostPorts))
	g.Uplinks.Set(float64(r.UplinksTotal))
	g.OversubscriptionRatio.Set(r.OversubscriptionRatio)
	g.ITCapWatts.Set(r.ITCapW)

	g.PowerWatts.WithLabelValues(ComponentNodes).Set(r.PNodeTotalW)
	g.PowerWatts.WithLabelValues(ComponentSwitching).Set(r.PSwitchingW)
	g.PowerWatts.WithLabelValues(ComponentOptics).Set(r.POpticsW)
	g.PowerWatts.WithLabelValues(ComponentTotal).Set(r.PTotalW)

	if r.Feasible {
		g.Feasible.Set(1)
	} else {
		g.Feasible.Set(0)
	}
	g.Info.Reset()
	g.Info.WithLabelValues(string(r.Status)).Set(1)
}

// Record registers gauges with reg and sets them from r.
func Record(reg prometheus.Registerer, r *cluster.Report) (*Gauges, error) {
	g, err := NewGauges(reg)
	if err != nil {
		return nil, err
	}
	g.Set(r)
	return g, nil
}

// WriteTextfile writes the gauges for r to path in the Prometheus text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, r *cluster.Report) error {
	reg := prometheus.NewRegistry()
	if _, err := Record(reg, r); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
