package dataframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/morinim/vita/value"
)

// CSVOptions configures CSV ingest (spec.md §6 "CSV input"). OutputCol
// is the zero-based position of the output column; -1 means "no output
// column" (pure unsupervised/test data). TrimSpace trims surrounding
// whitespace from every field before type inference, per spec.md §6's
// "option to trim surrounding whitespace".
type CSVOptions struct {
	Delimiter  rune // 0 means auto-detect
	HasHeader  bool // if false, header presence is sniffed
	OutputCol  int
	TrimSpace  bool
}

// DefaultCSVOptions returns the commonly-used defaults: auto-detected
// delimiter, sniffed header, output in the first column (spec.md §6
// "default: first column").
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{OutputCol: 0, TrimSpace: true}
}

// candidateDelimiters is spec.md §6's sniffing alphabet.
var candidateDelimiters = []rune{',', ';', '\t', ':', '|'}

// sniffDelimiter picks the delimiter that yields the most consistent
// field count across the sample's lines; ties favor comma (position in
// candidateDelimiters).
func sniffDelimiter(sample string) rune {
	lines := strings.Split(strings.TrimSpace(sample), "\n")
	if len(lines) == 0 {
		return ','
	}

	best := candidateDelimiters[0]
	bestScore := -1
	for _, d := range candidateDelimiters {
		counts := make(map[int]int)
		for _, line := range lines {
			if line == "" {
				continue
			}
			n := strings.Count(line, string(d)) + 1
			counts[n]++
		}
		// Score: the field count shared by the most lines, requiring
		// at least two fields to count as a real delimiter.
		score := 0
		for n, c := range counts {
			if n > 1 && c > score {
				score = c
			}
		}
		if score > bestScore {
			bestScore = score
			best = d
		}
	}
	return best
}

// sniffHeader reports whether the first record looks like a header: a
// header row with at least one non-numeric field where the
// corresponding column is otherwise numeric in later rows.
func sniffHeader(records [][]string) bool {
	if len(records) < 2 {
		return false
	}
	header, first := records[0], records[1]
	for i := range header {
		if i >= len(first) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(header[i]), 64); err != nil {
			if _, err2 := strconv.ParseFloat(strings.TrimSpace(first[i]), 64); err2 == nil {
				return true
			}
		}
	}
	return false
}

// LoadCSV parses r per RFC 4180 (csv.Reader handles quote escaping),
// inferring each column's domain from its observed values and encoding
// the output column's labels if it is textual (spec.md §4.13, §6).
func LoadCSV(r io.Reader, opts CSVOptions) (*Dataframe, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataframe: reading CSV: %w", err)
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(string(raw))
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = opts.TrimSpace

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataframe: parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataframe: empty CSV input")
	}

	hasHeader := opts.HasHeader
	if !hasHeader {
		hasHeader = sniffHeader(records)
	}

	var names []string
	rows := records
	if hasHeader {
		names = records[0]
		rows = records[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataframe: no data rows after header")
	}

	numCols := len(rows[0])
	if hasHeader {
		numCols = len(names)
	}
	if names == nil {
		names = make([]string, numCols)
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}

	outIdx := opts.OutputCol
	domains := inferDomains(rows, numCols, opts.TrimSpace)

	df := &Dataframe{}
	for i, name := range names {
		if i == outIdx {
			df.OutputCol = Column{Name: name, Domain: domains[i]}
			continue
		}
		df.Columns = append(df.Columns, Column{Name: name, Domain: domains[i]})
	}

	var survived, skipped int
	for _, row := range rows {
		if len(row) != numCols {
			skipped++
			continue // spec.md §7: malformed row, non-fatal, skipped
		}
		ex := Example{Input: make([]value.Value, 0, numCols-1)}
		ok := true
		for i, field := range row {
			if opts.TrimSpace {
				field = strings.TrimSpace(field)
			}
			if i == outIdx {
				if field == "" {
					ex.Output = value.Nil // permitted in test partitions, spec.md §6
					continue
				}
				ex.Output = parseValue(field, domains[i], df)
				continue
			}
			v := parseValue(field, domains[i], df)
			if v.IsVoid() && field != "" {
				ok = false
				break
			}
			ex.Input = append(ex.Input, v)
		}
		if !ok {
			skipped++
			continue
		}
		ex.Difficulty = 0
		ex.Age = 0
		df.Examples = append(df.Examples, ex)
		survived++
	}

	if survived == 0 {
		return nil, fmt.Errorf("dataframe: zero rows survived ingest (%d skipped)", skipped)
	}
	return df, nil
}

// inferDomains classifies each column as Bool, Int, Double, or String
// by trying progressively looser parses across every row (spec.md §3
// "Dataframe column").
func inferDomains(rows [][]string, numCols int, trim bool) []value.Kind {
	domains := make([]value.Kind, numCols)
	isBool := make([]bool, numCols)
	isInt := make([]bool, numCols)
	isFloat := make([]bool, numCols)
	for i := range domains {
		isBool[i], isInt[i], isFloat[i] = true, true, true
	}

	for _, row := range rows {
		for i := 0; i < numCols && i < len(row); i++ {
			field := row[i]
			if trim {
				field = strings.TrimSpace(field)
			}
			if field == "" {
				continue
			}
			if isBool[i] && !isBoolLiteral(field) {
				isBool[i] = false
			}
			if isInt[i] {
				if _, err := strconv.ParseInt(field, 10, 64); err != nil {
					isInt[i] = false
				}
			}
			if isFloat[i] {
				if _, err := strconv.ParseFloat(field, 64); err != nil {
					isFloat[i] = false
				}
			}
		}
	}

	for i := range domains {
		switch {
		case isBool[i]:
			domains[i] = value.Bool
		case isInt[i]:
			domains[i] = value.Int
		case isFloat[i]:
			domains[i] = value.Double
		default:
			domains[i] = value.String
		}
	}
	return domains
}

func isBoolLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "1", "0", "yes", "no":
		return true
	default:
		return false
	}
}

func parseValue(field string, domain value.Kind, df *Dataframe) value.Value {
	switch domain {
	case value.Bool:
		switch strings.ToLower(field) {
		case "true", "1", "yes":
			return value.OfBool(true)
		case "false", "0", "no":
			return value.OfBool(false)
		default:
			return value.Nil
		}
	case value.Int:
		i, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return value.Nil
		}
		return value.OfInt(i)
	case value.Double:
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return value.Nil
		}
		return value.OfDouble(f)
	case value.String:
		if df != nil {
			df.EncodeLabel(field)
		}
		return value.OfString(field)
	default:
		return value.Nil
	}
}
