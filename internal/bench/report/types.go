package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
)

type Report struct {
	Meta BenchMeta `json:"meta"`
	// Metrics is the short-name column order used by every entry.
	Metrics []string    `json:"metrics"`
	Jobs    []JobReport `json:"jobs"`
}

type BenchMeta struct {
	Timestamp   time.Time             `json:"timestamp"`
	TopK        int                   `json:"top_k,omitempty"`
	Engines     map[string]EngineInfo `json:"engines,omitempty"`
	Environment EnvironmentInfo       `json:"environment"`
}

type EngineInfo struct {
	Type       string `json:"type"`
	Connection string `json:"connection"`
	Index      string `json:"index,omitempty"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type JobReport struct {
	JobName    string        `json:"job"`
	Dataset    string        `json:"dataset"`
	QueryCount int           `json:"query_count"`
	Engines    []EngineEntry `json:"engines"`
}

type EngineEntry struct {
	Engine        string               `json:"engine"`
	Means         map[string]float64   `json:"means"`
	Evaluated     int                  `json:"evaluated"`
	Failed        int                  `json:"failed"`
	CollectFailed int                  `json:"collect_failed,omitempty"`
	Missing       int                  `json:"missing,omitempty"`
	Unknown       []string             `json:"unknown_metrics,omitempty"`
	Latency       *runner.LatencyStats `json:"latency,omitempty"`
	Error         string               `json:"error,omitempty"`
}
