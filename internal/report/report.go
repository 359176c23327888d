// Package report turns search results into the records the CLI prints, in
// text, table, YAML or JSON form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lazybeaver/internal/config"
	"github.com/katalvlaran/lazybeaver/internal/ui"
	"github.com/katalvlaran/lazybeaver/search"
)

// Record is one line of a run report: a bounded enumeration at one budget.
type Record struct {
	States  int          `json:"states" yaml:"states"`
	Budget  uint64       `json:"budget" yaml:"budget"`
	Found   bool         `json:"found" yaml:"found"`
	Least   uint64       `json:"lazy_beaver,omitempty" yaml:"lazy_beaver,omitempty"`
	Stats   search.Stats `json:"stats" yaml:"stats"`
	Elapsed float64      `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Speedup float64      `json:"speedup,omitempty" yaml:"speedup,omitempty"`
}

// FromResult builds a record; elapsed is the wall time to report with it.
func FromResult(res search.Result, elapsed time.Duration) Record {
	rec := Record{
		States:  res.States,
		Budget:  res.Budget,
		Found:   res.Found,
		Least:   res.Least,
		Stats:   res.Stats,
		Elapsed: elapsed.Seconds(),
	}
	if res.Found && res.Stats.Examined > 0 {
		rec.Speedup = math.Floor(NaiveMachines(res.States) / float64(res.Stats.Examined))
	}

	return rec
}

// NaiveMachines is (4n+1)^(2n): the size of the machine space without any
// pruning, each of the 2n cells being halt or one of 4n rules.
func NaiveMachines(n int) float64 {
	return math.Pow(float64(4*n+1), float64(2*n))
}

// Line renders a record the way the escalation driver prints progress:
//
//	LB(2) > 1 [6 machines, 0s]
//	LB(2) = 7 [168 machines, 0s, 39x speedup]
func Line(rec Record) string {
	secs := int64(rec.Elapsed)
	if !rec.Found {
		return fmt.Sprintf("LB(%d) > %d [%d machines, %ds]", rec.States, rec.Budget, rec.Stats.Examined, secs)
	}

	return fmt.Sprintf("LB(%d) = %d [%d machines, %ds, %.0fx speedup]",
		rec.States, rec.Least, rec.Stats.Examined, secs, rec.Speedup)
}

// Writer emits records in one output format. Text records are written as
// they arrive; the other formats are buffered until Flush.
type Writer struct {
	out     io.Writer
	format  string
	records []Record
}

// NewWriter returns a Writer for one of the config.Format* names.
func NewWriter(out io.Writer, format string) *Writer {
	return &Writer{out: out, format: format}
}

// Add records one result.
func (w *Writer) Add(rec Record) error {
	if w.format == config.FormatText {
		line := Line(rec)
		if rec.Found {
			line = ui.SuccessMsg("%s", line)
		} else {
			line = ui.Muted(line)
		}
		_, err := fmt.Fprintln(w.out, line)

		return err
	}
	w.records = append(w.records, rec)

	return nil
}

// Flush writes buffered records.
func (w *Writer) Flush() error {
	switch w.format {
	case config.FormatText:
		return nil
	case config.FormatTable:
		rows := make([][]string, 0, len(w.records))
		for _, r := range w.records {
			lb := "> " + strconv.FormatUint(r.Budget, 10)
			if r.Found {
				lb = strconv.FormatUint(r.Least, 10)
			}
			rows = append(rows, []string{
				strconv.Itoa(r.States),
				strconv.FormatUint(r.Budget, 10),
				lb,
				strconv.FormatUint(r.Stats.Examined, 10),
				strconv.FormatUint(r.Stats.Halted, 10),
				strconv.FormatUint(r.Stats.NeverHalts, 10),
				strconv.FormatUint(r.Stats.StillRunning, 10),
				strconv.FormatFloat(r.Elapsed, 'f', 3, 64),
			})
		}
		_, err := fmt.Fprintln(w.out, ui.Table(
			[]string{"n", "budget", "LB(n)", "machines", "halted", "never halts", "running", "seconds"}, rows))

		return err
	default:
		return encode(w.out, w.format, w.records)
	}
}

// Distribution is the halting-time histogram of one enumeration.
type Distribution struct {
	States  int             `json:"states" yaml:"states"`
	Budget  uint64          `json:"budget" yaml:"budget"`
	Stats   search.Stats    `json:"stats" yaml:"stats"`
	Buckets []search.Bucket `json:"buckets" yaml:"buckets"`
	Running uint64          `json:"still_running" yaml:"still_running"`
}

// WriteDistribution prints a histogram in the given format.
func WriteDistribution(out io.Writer, format string, d Distribution) error {
	switch format {
	case config.FormatText:
		for _, b := range d.Buckets {
			if _, err := fmt.Fprintf(out, "Halting on step %d: %d machines\n", b.Step, b.Machines); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(out, "Didn't halt in %d steps: %d machines\n", d.Budget, d.Running)

		return err
	case config.FormatTable:
		rows := make([][]string, 0, len(d.Buckets))
		for _, b := range d.Buckets {
			rows = append(rows, []string{strconv.FormatUint(b.Step, 10), strconv.FormatUint(b.Machines, 10)})
		}
		_, err := fmt.Fprintln(out, ui.Table([]string{"step", "machines"}, rows))

		return err
	default:
		return encode(out, format, d)
	}
}

func encode(out io.Writer, format string, v any) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}
