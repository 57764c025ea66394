package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Parse reads a delimited text table from r.
//
// Procedure:
//  1. Scan line by line; drop blank lines and comment lines.
//  2. Split each line into fields (whitespace runs, or the exact Delimiter rune).
//  3. The first data row fixes the column count; later rows must match (ErrRaggedRow).
//  4. The label column (default: last) is kept as a string; every other cell
//     must parse as a finite float64.
//
// Errors are wrapped with the 1-based line number of the offending row, so
// errors.Is against the sentinels still works.
//
// Complexity: O(N·D) time, O(N·D) memory.
func Parse(r io.Reader, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.LabelColumn < LastColumn {
		return nil, fmt.Errorf("label column %d: %w", o.LabelColumn, ErrBadLabelColumn)
	}

	var (
		feats  []float64 // row-major feature cells
		labels []string
		cols   = -1 // total columns per row, fixed by the first data row
		rows   int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if o.Comment != "" && strings.HasPrefix(text, o.Comment) {
			continue
		}

		fields := splitFields(text, o.Delimiter)
		if cols == -1 {
			cols = len(fields)
			if err := checkShape(cols, &o); err != nil {
				return nil, err
			}
		}
		if len(fields) != cols {
			return nil, fmt.Errorf("line %d: got %d columns, want %d: %w", line, len(fields), cols, ErrRaggedRow)
		}

		labelIdx := resolveLabelColumn(cols, &o)
		for i, f := range fields {
			if i == labelIdx {
				labels = append(labels, f)

				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d, value %q: %w", line, i+1, f, ErrBadValue)
			}
			if !o.AllowNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, ErrNonFinite)
			}
			feats = append(feats, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyDataset
	}

	d := cols
	if !o.NoLabels {
		d--
	}
	if o.FeatureNames != nil && len(o.FeatureNames) != d {
		return nil, fmt.Errorf("got %d feature names for %d columns: %w", len(o.FeatureNames), d, ErrNoFeatures)
	}
	if o.NoLabels {
		labels = nil
	}

	return New(mat.NewDense(rows, d, feats), labels, o.FeatureNames)
}

// Load opens path and parses it with Parse.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return t, nil
}

// splitFields splits a trimmed line into fields by delimiter policy.
// A zero delimiter means "runs of whitespace" (strings.Fields semantics);
// any other rune splits exactly, trimming surrounding spaces per field
// so "5.1, 3.5" behaves the same as "5.1,3.5".
func splitFields(line string, delim rune) []string {
	if delim == 0 {
		return strings.Fields(line)
	}
	parts := strings.Split(line, string(delim))
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// checkShape validates the fixed column count against the label options.
func checkShape(cols int, o *Options) error {
	if o.NoLabels {
		if cols < 1 {
			return ErrNoFeatures
		}

		return nil
	}
	if o.LabelColumn != LastColumn && o.LabelColumn >= cols {
		return fmt.Errorf("label column %d of %d columns: %w", o.LabelColumn, cols, ErrBadLabelColumn)
	}
	if cols < 2 { // need at least one feature beside the label
		return ErrNoFeatures
	}

	return nil
}

// resolveLabelColumn maps the configured label column to a concrete index,
// or -1 when the table has no label column at all.
func resolveLabelColumn(cols int, o *Options) int {
	if o.NoLabels {
		return -1
	}
	if o.LabelColumn == LastColumn {
		return cols - 1
	}

	return o.LabelColumn
}
