package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func WritePredictionsFile(preds []Prediction, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create predictions file: %w", err)
	}
	if err := WritePredictions(f, preds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close predictions file: %w", err)
	}
	return nil
}

func WritePredictions(w io.Writer, preds []Prediction) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, p := range preds {
		if p.DocIDs == nil {
			p.DocIDs = []string{}
		}
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode prediction %q: %w", p.QueryID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush predictions: %w", err)
	}
	return nil
}

// WriteFile writes the dataset as JSONL in the format Read accepts.
func WriteFile(ds *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	if err := Write(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dataset file: %w", err)
	}
	return nil
}

func Write(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, q := range ds.Queries {
		rec := queryRecord{QueryID: q.ID, Query: q.Text, DocIDs: q.Truth}
		if rec.DocIDs == nil {
			rec.DocIDs = []string{}
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode query %q: %w", q.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}
