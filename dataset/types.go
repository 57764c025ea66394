// Package dataset: core Table type, sentinel errors and configuration options.
package dataset

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Parse, Load and Table accessors.
var (
	// ErrEmptyDataset indicates the input contained no data rows at all.
	ErrEmptyDataset = errors.New("dataset: input contains no observations")

	// ErrRaggedRow indicates a row whose column count differs from the first row.
	ErrRaggedRow = errors.New("dataset: all rows must have the same number of columns")

	// ErrBadValue indicates a feature cell that does not parse as a real number.
	ErrBadValue = errors.New("dataset: feature cell is not a real number")

	// ErrNonFinite indicates a NaN or ±Inf feature value under strict parsing.
	ErrNonFinite = errors.New("dataset: non-finite feature value")

	// ErrBadLabelColumn indicates the configured label column is outside the row.
	ErrBadLabelColumn = errors.New("dataset: label column out of range")

	// ErrNoFeatures indicates that, after removing the label column,
	// no feature columns remain.
	ErrNoFeatures = errors.New("dataset: at least one feature column is required")

	// ErrColumnIndex indicates a requested feature column index is out of range.
	ErrColumnIndex = errors.New("dataset: feature column index out of range")
)

// LastColumn selects the final column of every row as the label column.
// It is the default for WithLabelColumn-free parsing, matching the layout
// of most classic datasets (features first, class last).
const LastColumn = -1

// Options configures Parse and Load.
//
// Delimiter   – field separator rune; 0 (default) splits on arbitrary runs
// of Unicode whitespace, anything else splits on that exact rune.
// LabelColumn – zero-based index of the label column, or LastColumn.
// NoLabels    – treat every column as a feature; labels come back empty.
// Comment     – lines starting with this prefix are skipped ("" disables).
// AllowNonFinite – admit NaN/±Inf feature values instead of ErrNonFinite.
// FeatureNames   – optional column names; length is validated against D.
type Options struct {
	Delimiter      rune
	LabelColumn    int
	NoLabels       bool
	Comment        string
	AllowNonFinite bool
	FeatureNames   []string
}

// Option represents a functional option for configuring Parse/Load.
type Option func(*Options)

// WithDelimiter sets an exact single-rune field separator (e.g. ',').
// The zero rune keeps the default whitespace splitting.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		o.Delimiter = r
	}
}

// WithLabelColumn selects which column holds the class label.
// Pass a zero-based index, or LastColumn for the final column.
// Any other negative value causes ErrBadLabelColumn at parse time.
func WithLabelColumn(col int) Option {
	return func(o *Options) {
		o.LabelColumn = col
	}
}

// WithNoLabels treats every column as a feature; Labels() returns
// empty strings and Classes() returns nil.
func WithNoLabels() Option {
	return func(o *Options) {
		o.NoLabels = true
	}
}

// WithComment sets a line prefix that marks comment lines to skip.
// The empty string (default "" is overridden here) disables skipping.
func WithComment(prefix string) Option {
	return func(o *Options) {
		o.Comment = prefix
	}
}

// WithAllowNonFinite admits NaN and ±Inf feature values.
// By default such values are rejected with ErrNonFinite.
func WithAllowNonFinite() Option {
	return func(o *Options) {
		o.AllowNonFinite = true
	}
}

// WithFeatureNames attaches names to the feature columns.
// The slice length must match the parsed feature count D,
// otherwise Parse returns ErrNoFeatures-wrapped dimension context.
func WithFeatureNames(names ...string) Option {
	return func(o *Options) {
		o.FeatureNames = names
	}
}

// DefaultOptions returns the Options used when no overrides are given.
//
// Defaults:
//   - Delimiter:   0 (split on runs of whitespace)
//   - LabelColumn: LastColumn
//   - NoLabels:    false
//   - Comment:     "#"
//   - AllowNonFinite: false
func DefaultOptions() Options {
	return Options{
		Delimiter:   0,
		LabelColumn: LastColumn,
		Comment:     "#",
	}
}

// Table is an N×D table of real-valued features with one optional
// class label per observation. Construct it with Parse, Load or New;
// treat it as read-only afterwards.
type Table struct {
	x        *mat.Dense // N×D feature matrix
	labels   []string   // len N, or nil when parsed with WithNoLabels
	features []string   // len D, or nil when unnamed
}

// New wraps an existing matrix and label slice into a Table.
// labels may be nil for unlabeled data; otherwise len(labels) must equal
// the row count of x. featureNames may be nil or of length D.
func New(x *mat.Dense, labels, featureNames []string) (*Table, error) {
	if x == nil {
		return nil, ErrEmptyDataset
	}
	n, d := x.Dims()
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if d == 0 {
		return nil, ErrNoFeatures
	}
	if labels != nil && len(labels) != n {
		return nil, ErrRaggedRow
	}
	if featureNames != nil && len(featureNames) != d {
		return nil, ErrNoFeatures
	}

	return &Table{x: x, labels: labels, features: featureNames}, nil
}

// N reports the number of observations (rows).
func (t *Table) N() int {
	n, _ := t.x.Dims()

	return n
}

// D reports the number of feature columns.
func (t *Table) D() int {
	_, d := t.x.Dims()

	return d
}

// Matrix returns the underlying N×D feature matrix.
// The matrix is shared, not copied; mutating it mutates the Table.
func (t *Table) Matrix() *mat.Dense { return t.x }

// Labels returns a copy of the per-observation class labels.
// The result is nil for unlabeled tables.
func (t *Table) Labels() []string {
	if t.labels == nil {
		return nil
	}
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Classes returns the distinct labels in ascending lexical order,
// or nil for unlabeled tables. Complexity: O(N log N).
func (t *Table) Classes() []string {
	if t.labels == nil {
		return nil
	}
	seen := make(map[string]struct{}, 8)
	classes := make([]string, 0, 8)
	for _, l := range t.labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		classes = append(classes, l)
	}
	sort.Strings(classes)

	return classes
}

// FeatureNames returns a copy of the feature column names, or nil.
func (t *Table) FeatureNames() []string {
	if t.features == nil {
		return nil
	}
	out := make([]string, len(t.features))
	copy(out, t.features)

	return out
}

// Column returns a copy of feature column j as a slice of length N.
func (t *Table) Column(j int) ([]float64, error) {
	if j < 0 || j >= t.D() {
		return nil, ErrColumnIndex
	}
	out := make([]float64, t.N())
	mat.Col(out, j, t.x)

	return out, nil
}
