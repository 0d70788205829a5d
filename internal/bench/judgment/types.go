package judgment

// Ungraded marks a pooled document nobody has judged yet.
const Ungraded = -1

type GradedDoc struct {
	DocID string `yaml:"doc_id"`
	Grade int    `yaml:"grade"`
}

type JudgmentFile struct {
	Dataset string          `yaml:"dataset"`
	Queries []JudgmentEntry `yaml:"queries"`
}

type JudgmentEntry struct {
	QueryID string      `yaml:"query_id"`
	Query   string      `yaml:"query"`
	Docs    []GradedDoc `yaml:"docs"`
}
