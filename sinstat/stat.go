// Package sinstat reports a completed evaluation run: rewrite counts,
// elapsed wall time, host resource usage, and a run identifier, printed
// as a table the way the teacher's core package renders register and
// buffer state (core/util.go's PrintState).
package sinstat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Report summarizes one evaluation run, live or completed: Rewrites
// reflects whatever has been fired so far when the report is built, so
// the same type doubles as the debug surface's in-progress snapshot and
// the final printed summary.
type Report struct {
	RunID     string        `json:"run_id"`
	Scenario  string        `json:"scenario"`
	Rewrites  uint64        `json:"rewrites"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Workers   int           `json:"workers"`
	HostUsage HostUsage     `json:"host_usage"`
}

// HostUsage is a snapshot of host resource usage, sampled via gopsutil
// so the report reflects real system pressure rather than
// Go-runtime-only figures.
type HostUsage struct {
	CPUPercent   float64 `json:"cpu_percent"`
	MemUsedBytes uint64  `json:"mem_used_bytes"`
}

// SampleHostUsage takes a best-effort host usage snapshot. Sampling
// failures are not fatal to a run's report — they simply leave the
// corresponding field at its zero value.
func SampleHostUsage() HostUsage {
	var usage HostUsage
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		usage.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		usage.MemUsedBytes = vm.Used
	}
	return usage
}

// NewReport builds a Report with a fresh run identifier.
func NewReport(scenario string, rewrites uint64, elapsed time.Duration, workers int) Report {
	return Report{
		RunID:     xid.New().String(),
		Scenario:  scenario,
		Rewrites:  rewrites,
		Elapsed:   elapsed,
		Workers:   workers,
		HostUsage: SampleHostUsage(),
	}
}

// JSON marshals the report, the format the debug surface's /stats
// handler serves while a pool-mode run is in progress.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// Render formats the report as a table for terminal output.
func (r Report) Render() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("sinrt run %s", r.RunID))
	t.AppendHeader(table.Row{"Scenario", "Rewrites", "Elapsed", "Workers", "CPU%", "Mem (MB)"})
	t.AppendRow(table.Row{
		r.Scenario,
		r.Rewrites,
		r.Elapsed.String(),
		r.Workers,
		fmt.Sprintf("%.1f", r.HostUsage.CPUPercent),
		r.HostUsage.MemUsedBytes / (1 << 20),
	})
	return t.Render()
}

// RewritesPerSecond reports throughput, or 0 if elapsed was too short
// to measure meaningfully.
func (r Report) RewritesPerSecond() float64 {
	seconds := r.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(r.Rewrites) / seconds
}
