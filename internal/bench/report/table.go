package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking Quality ===\n")

	for i := range r.Jobs {
		jr := &r.Jobs[i]
		fmt.Fprintf(tw, "\n--- Job: %s (%s, %d queries) ---\n\n", jr.JobName, jr.Dataset, jr.QueryCount)
		writeMeansTable(tw, jr, r.Metrics)
		if hasLatency(jr) {
			writeLatencyTable(tw, jr)
		}
	}

	tw.Flush()
}

func writeMeansTable(tw *tabwriter.Writer, jr *JobReport, metrics []string) {
	header := []string{"Engine"}
	for _, m := range metrics {
		header = append(header, Label(m))
	}
	header = append(header, "Scored", "Errors")
	writeHeader(tw, header)

	for _, e := range jr.Engines {
		row := []string{e.Engine}
		for _, m := range metrics {
			v, ok := e.Means[m]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.4f", v))
		}
		row = append(row,
			fmt.Sprintf("%d", e.Evaluated),
			fmt.Sprintf("%d", e.Failed+e.CollectFailed),
		)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)

	for _, e := range jr.Engines {
		if e.Error != "" {
			fmt.Fprintf(tw, "%s: %s\n", e.Engine, e.Error)
		}
	}
}

func writeLatencyTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Latency (per request)\n\n")
	writeHeader(tw, []string{"Engine", "Min", "p50", "p95", "p99", "Max", "Mean", "Stddev", "Samples"})

	for _, e := range jr.Engines {
		if e.Latency == nil {
			continue
		}
		s := e.Latency
		row := []string{
			e.Engine,
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P95()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmtDuration(s.Stddev),
			fmt.Sprintf("%d", s.SampleCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func hasLatency(jr *JobReport) bool {
	for _, e := range jr.Engines {
		if e.Latency != nil {
			return true
		}
	}
	return false
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
