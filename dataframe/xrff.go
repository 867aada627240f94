package dataframe

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/morinim/vita/value"
)

// xrffDataset mirrors spec.md §6's XRFF shape: dataset > header >
// attributes, dataset > body > instances > instance > value*.
type xrffDataset struct {
	XMLName xml.Name     `xml:"dataset"`
	Header  xrffHeader   `xml:"header"`
	Body    xrffBody     `xml:"body"`
}

type xrffHeader struct {
	Attributes []xrffAttribute `xml:"attributes>attribute"`
}

type xrffAttribute struct {
	Name     string `xml:"name,attr"`
	Type     string `xml:"type,attr"`
	Category string `xml:"category,attr"`
	Class    string `xml:"class,attr"`
}

type xrffBody struct {
	Instances []xrffInstance `xml:"instances>instance"`
}

type xrffInstance struct {
	Values []string `xml:"value"`
}

// LoadXRFF parses an XRFF document (spec.md §6): each attribute's
// declared type maps to a value.Kind (numeric/double -> Double, integer
// -> Int, boolean -> Bool, nominal/string -> String), and at most one
// attribute may declare class="yes" (the output column); if none does,
// the output column defaults to the last attribute.
func LoadXRFF(r io.Reader) (*Dataframe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataframe: reading XRFF: %w", err)
	}

	var doc xrffDataset
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataframe: parsing XRFF: %w", err)
	}
	if len(doc.Header.Attributes) == 0 {
		return nil, fmt.Errorf("dataframe: XRFF declares no attributes")
	}

	classCount := 0
	outIdx := len(doc.Header.Attributes) - 1
	for i, a := range doc.Header.Attributes {
		if strings.EqualFold(a.Class, "yes") {
			classCount++
			outIdx = i
		}
	}
	if classCount > 1 {
		return nil, fmt.Errorf("dataframe: XRFF declares %d class attributes, at most one is allowed", classCount)
	}

	domains := make([]value.Kind, len(doc.Header.Attributes))
	for i, a := range doc.Header.Attributes {
		domains[i] = xrffKind(a.Type)
	}

	df := &Dataframe{}
	for i, a := range doc.Header.Attributes {
		col := Column{Name: a.Name, Domain: domains[i]}
		if i == outIdx {
			df.OutputCol = col
			continue
		}
		df.Columns = append(df.Columns, col)
	}

	var survived, skipped int
	for _, inst := range doc.Body.Instances {
		if len(inst.Values) != len(doc.Header.Attributes) {
			skipped++
			continue
		}
		ex := Example{Input: make([]value.Value, 0, len(df.Columns))}
		ok := true
		for i, raw := range inst.Values {
			v := parseValue(strings.TrimSpace(raw), domains[i], df)
			if i == outIdx {
				if raw == "" {
					ex.Output = value.Nil
				} else {
					ex.Output = v
				}
				continue
			}
			if v.IsVoid() && raw != "" {
				ok = false
				break
			}
			ex.Input = append(ex.Input, v)
		}
		if !ok {
			skipped++
			continue
		}
		df.Examples = append(df.Examples, ex)
		survived++
	}

	if survived == 0 {
		return nil, fmt.Errorf("dataframe: zero XRFF instances survived ingest (%d skipped)", skipped)
	}
	return df, nil
}

func xrffKind(t string) value.Kind {
	switch strings.ToLower(t) {
	case "numeric", "double", "real":
		return value.Double
	case "integer":
		return value.Int
	case "boolean":
		return value.Bool
	case "nominal", "string":
		return value.String
	default:
		return value.String
	}
}
