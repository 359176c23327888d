package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lazybeaver/internal/config"
	"github.com/katalvlaran/lazybeaver/internal/report"
	"github.com/katalvlaran/lazybeaver/internal/ui"
	"github.com/katalvlaran/lazybeaver/search"
)

func records(t *testing.T) []report.Record {
	t.Helper()
	ui.DisableColor()

	small, err := search.Limited(2, 1)
	require.NoError(t, err)
	found, err := search.Limited(2, 10)
	require.NoError(t, err)

	return []report.Record{
		report.FromResult(small, 0),
		report.FromResult(found, 2500*time.Millisecond),
	}
}

func TestLine(t *testing.T) {
	recs := records(t)
	assert.Equal(t, "LB(2) > 1 [6 machines, 0s]", report.Line(recs[0]))
	assert.Equal(t, "LB(2) = 7 [168 machines, 2s, 39x speedup]", report.Line(recs[1]))
}

func TestNaiveMachines(t *testing.T) {
	assert.Equal(t, 25.0, report.NaiveMachines(1))
	assert.Equal(t, 6561.0, report.NaiveMachines(2))
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf, config.FormatText)
	for _, r := range records(t) {
		require.NoError(t, w.Add(r))
	}
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "LB(2) > 1 [6 machines, 0s]", lines[0])
	assert.Equal(t, "✓ LB(2) = 7 [168 machines, 2s, 39x speedup]", lines[1])
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf, config.FormatJSON)
	for _, r := range records(t) {
		require.NoError(t, w.Add(r))
	}
	assert.Zero(t, buf.Len(), "structured formats buffer until Flush")
	require.NoError(t, w.Flush())

	var got []report.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.False(t, got[0].Found)
	assert.Equal(t, uint64(7), got[1].Least)
	assert.Equal(t, uint64(168), got[1].Stats.Examined)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf, config.FormatYAML)
	for _, r := range records(t) {
		require.NoError(t, w.Add(r))
	}
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), "lazy_beaver: 7")
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestWriter_Table(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf, config.FormatTable)
	for _, r := range records(t) {
		require.NoError(t, w.Add(r))
	}
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "LB(n)")
	assert.Contains(t, out, "> 1")
	assert.Contains(t, out, "168")
}

func TestWriteDistribution(t *testing.T) {
	buckets, res, err := search.Distribution(2, 10)
	require.NoError(t, err)
	d := report.Distribution{States: 2, Budget: 10, Stats: res.Stats, Buckets: buckets, Running: res.Stats.StillRunning + res.Stats.NeverHalts}

	var buf bytes.Buffer
	require.NoError(t, report.WriteDistribution(&buf, config.FormatText, d))
	assert.Contains(t, buf.String(), "Halting on step 6: 5 machines\n")
	assert.Contains(t, buf.String(), "Didn't halt in 10 steps: 130 machines\n")

	buf.Reset()
	assert.Error(t, report.WriteDistribution(&buf, "xml", d))
}
