package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

// LoadFromFile reads a JSONL dev set. Each line holds a query and its truth:
//
//	{"query": "who wrote ...", "docid": "12"}
//	{"query_id": "q7", "query": "...", "docids": ["3", "9"]}
//
// Queries without query_id are numbered by their 0-based line index.
func LoadFromFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, err
	}
	ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ds, nil
}

func Read(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	seen := make(map[string]int)

	err := scanLines(r, func(lineNo int, line []byte) error {
		var rec queryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("parse dataset line %d: %w", lineNo+1, err)
		}
		id := rec.QueryID
		if id == "" {
			id = strconv.Itoa(len(ds.Queries))
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("dataset line %d: duplicate query id %q (first on line %d)", lineNo+1, id, prev+1)
		}
		seen[id] = lineNo
		ds.Queries = append(ds.Queries, Query{ID: id, Text: rec.Query, Truth: rec.truth()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(ds.Queries) == 0 {
		return nil, fmt.Errorf("dataset has no queries")
	}
	return ds, nil
}

func LoadPredictions(path string) ([]Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open predictions: %w", err)
	}
	defer f.Close()
	return ReadPredictions(f)
}

// ReadPredictions reads JSONL lines of {"query_id": ..., "docids": [...]}.
func ReadPredictions(r io.Reader) ([]Prediction, error) {
	var preds []Prediction
	err := scanLines(r, func(lineNo int, line []byte) error {
		var p Prediction
		if err := json.Unmarshal(line, &p); err != nil {
			return fmt.Errorf("parse predictions line %d: %w", lineNo+1, err)
		}
		if p.QueryID == "" {
			p.QueryID = strconv.Itoa(len(preds))
		}
		preds = append(preds, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return preds, nil
}

func scanLines(r io.Reader, fn func(lineNo int, line []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := -1
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read lines: %w", err)
	}
	return nil
}
