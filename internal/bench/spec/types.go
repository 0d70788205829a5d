package spec

type BenchSpec struct {
	Jobs    []Job             `yaml:"jobs"`
	Engines map[string]Engine `yaml:"engines"`
	Metrics MetricsConfig     `yaml:"metrics"`
	Runs    RunsConfig        `yaml:"runs"`
}

type Job struct {
	Name    string   `yaml:"name"`
	Dataset string   `yaml:"dataset"`
	Engines []string `yaml:"engines"`
	// Output, when set, receives the collected predictions as JSONL, one file per engine.
	Output string `yaml:"output,omitempty"`
}

// Engine describes where ranked predictions come from.
//
//	postgres:      Query is SQL; $1 is the query text, $2 the limit; first column is the doc id.
//	elasticsearch: Query is a JSON body with a {{query}} placeholder; ids come from IDField or _id.
//	api:           Connection is the base URL; Path is appended; query and size are sent as params.
//	file:          Connection is a predictions JSONL file.
type Engine struct {
	Type        string  `yaml:"type"`
	Connection  string  `yaml:"connection"`
	Index       string  `yaml:"index,omitempty"`
	Query       string  `yaml:"query,omitempty"`
	IDField     string  `yaml:"id_field,omitempty"`
	Path        string  `yaml:"path,omitempty"`
	RateLimit   float64 `yaml:"rate_limit,omitempty"`
	Concurrency int     `yaml:"concurrency,omitempty"`
}

type MetricsConfig struct {
	Catalog    []string `yaml:"catalog"`
	Report     []string `yaml:"report"`
	IncludeAll bool     `yaml:"include_all"`
	Graded     bool     `yaml:"graded"`
	Strict     bool     `yaml:"strict"`
	TopK       int      `yaml:"top_k"`
	Workers    int      `yaml:"workers"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}
