// Package dataframe implements Vita's CSV/XRFF data ingest (spec.md
// §4.13, §6): a typed, labeled example stream with a configurable
// output column, column-type inference, classification label encoding,
// train/validation/test partitioning, and Dynamic Subset Selection.
//
// The teacher has no CSV/XRFF ingest of its own; this follows
// tomMoulard-KeyBoardGen's pkg/parser/keylogger.go shape (a dedicated
// parser package with a Config struct and format sniffing), adapted to
// CSV dialect sniffing instead of keylogger text (SPEC_FULL.md §11).
package dataframe

import (
	"fmt"

	"github.com/morinim/vita/value"
)

// Column describes one input or output field: its name, its inferred
// domain, and, for string columns, the distinct labels observed
// (spec.md §3 "Dataframe column").
type Column struct {
	Name   string
	Domain value.Kind
	Labels []string // distinct observed string labels, in first-seen order
}

// Example is one row: a fixed-length input vector, an output value, and
// the DSS bookkeeping fields (spec.md §3 "Dataframe example", §4.13
// DSS).
type Example struct {
	Input      []value.Value
	Output     value.Value
	Difficulty float64
	Age        int
}

// Dataframe is a typed, labeled example stream with a designated output
// column (spec.md §2, §4.13).
type Dataframe struct {
	Columns     []Column // input columns only, in declaration order
	OutputCol   Column
	Examples    []Example
	labelToCode map[string]int64
	codeToLabel []string
}

// Classification reports whether the output column is textual (spec.md
// §4.13: "if the output is textual, the problem is classification").
func (d *Dataframe) Classification() bool { return d.OutputCol.Domain == value.String }

// EncodeLabel maps a string label to its stable integer class code
// within this dataframe, assigning a fresh code the first time a label
// is seen (spec.md §4.13 "encode(label) -> class_t stable within a
// single dataframe").
func (d *Dataframe) EncodeLabel(label string) int64 {
	if d.labelToCode == nil {
		d.labelToCode = make(map[string]int64)
	}
	if code, ok := d.labelToCode[label]; ok {
		return code
	}
	code := int64(len(d.codeToLabel))
	d.labelToCode[label] = code
	d.codeToLabel = append(d.codeToLabel, label)
	return code
}

// DecodeLabel reverses EncodeLabel; ok is false for an unknown code.
func (d *Dataframe) DecodeLabel(code int64) (string, bool) {
	if code < 0 || int(code) >= len(d.codeToLabel) {
		return "", false
	}
	return d.codeToLabel[code], true
}

// NumClasses returns the number of distinct encoded labels seen so far.
func (d *Dataframe) NumClasses() int { return len(d.codeToLabel) }

// Variables returns the number of input columns (spec.md §3
// "input.size() == variables()").
func (d *Dataframe) Variables() int { return len(d.Columns) }

// validateExample enforces spec.md §3's dataframe invariants: arity
// matches column count, and the output lies in the declared domain
// (void is always permitted: spec.md §6 "empty output values are
// permitted in the test partition only" — enforcement of the partition
// restriction is the caller's responsibility since it is positional,
// not structural).
func (d *Dataframe) validateExample(ex Example) error {
	if len(ex.Input) != len(d.Columns) {
		return fmt.Errorf("dataframe: example has %d inputs, expected %d", len(ex.Input), len(d.Columns))
	}
	if ex.Output.IsVoid() {
		return nil
	}
	if ex.Output.Kind() != d.OutputCol.Domain {
		return fmt.Errorf("dataframe: output kind %s does not match declared domain %s", ex.Output.Kind(), d.OutputCol.Domain)
	}
	return nil
}
