package dataframe

import (
	"strings"
	"testing"

	"github.com/morinim/vita/random"
	"github.com/morinim/vita/value"
)

const titanicLike = `survived,pclass,age,fare
1,1,29.0,211.3
0,3,22.0,7.25
1,2,26.0,30.0
0,3,35.0,8.05
1,1,4.0,151.5
`

func TestLoadCSVInfersDomainsAndSurvivesRows(t *testing.T) {
	df, err := LoadCSV(strings.NewReader(titanicLike), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(df.Examples) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(df.Examples))
	}
	if df.OutputCol.Domain != value.Bool && df.OutputCol.Domain != value.Int {
		t.Fatalf("expected numeric/bool output domain, got %s", df.OutputCol.Domain)
	}
	if df.Variables() != 3 {
		t.Fatalf("expected 3 input variables, got %d", df.Variables())
	}
}

func TestLoadCSVSniffsSemicolonDelimiter(t *testing.T) {
	data := "a;b;c\n1;2;3\n4;5;6\n"
	df, err := LoadCSV(strings.NewReader(data), CSVOptions{OutputCol: -1, TrimSpace: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(df.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(df.Examples))
	}
	if df.Variables() != 3 {
		t.Fatalf("expected 3 columns, got %d", df.Variables())
	}
}

func TestLoadCSVSkipsMalformedRowsButSurvives(t *testing.T) {
	data := "a,b\n1,2\nbroken\n3,4\n"
	df, err := LoadCSV(strings.NewReader(data), CSVOptions{OutputCol: -1, TrimSpace: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(df.Examples) != 2 {
		t.Fatalf("expected 2 surviving examples, got %d", len(df.Examples))
	}
}

func TestLoadCSVFailsWhenZeroRowsSurvive(t *testing.T) {
	data := "a,b\nbroken,row,too,long\n"
	_, err := LoadCSV(strings.NewReader(data), CSVOptions{HasHeader: true, OutputCol: -1, TrimSpace: true})
	if err == nil {
		t.Fatal("expected an error when zero rows survive ingest")
	}
}

func TestEncodeLabelIsStable(t *testing.T) {
	df := &Dataframe{}
	a := df.EncodeLabel("cat")
	b := df.EncodeLabel("dog")
	c := df.EncodeLabel("cat")
	if a != c {
		t.Fatalf("expected repeated label to encode to the same class, got %d and %d", a, c)
	}
	if a == b {
		t.Fatal("expected distinct labels to encode to distinct classes")
	}
	if label, ok := df.DecodeLabel(a); !ok || label != "cat" {
		t.Fatalf("expected DecodeLabel to reverse EncodeLabel, got %q, %v", label, ok)
	}
}

const simpleXRFF = `<dataset>
  <header>
    <attributes>
      <attribute name="x" type="numeric"/>
      <attribute name="label" type="nominal" class="yes"/>
    </attributes>
  </header>
  <body>
    <instances>
      <instance><value>1.0</value><value>a</value></instance>
      <instance><value>2.0</value><value>b</value></instance>
    </instances>
  </body>
</dataset>`

func TestLoadXRFFParsesAttributesAndClassColumn(t *testing.T) {
	df, err := LoadXRFF(strings.NewReader(simpleXRFF))
	if err != nil {
		t.Fatalf("LoadXRFF: %v", err)
	}
	if len(df.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(df.Examples))
	}
	if df.OutputCol.Name != "label" {
		t.Fatalf("expected output column 'label', got %q", df.OutputCol.Name)
	}
	if !df.Classification() {
		t.Fatal("expected a nominal output column to be classification")
	}
}

func TestPartitionSplitsByFraction(t *testing.T) {
	df, _ := LoadCSV(strings.NewReader(titanicLike), DefaultCSVOptions())
	rnd := random.New(1)
	train, valid, test := df.Partition(0.2, 0.2, rnd)
	if len(train.Examples)+len(valid.Examples)+len(test.Examples) != len(df.Examples) {
		t.Fatal("partition should preserve the total example count")
	}
}

func TestDSSSampleRespectsSize(t *testing.T) {
	df, _ := LoadCSV(strings.NewReader(titanicLike), DefaultCSVOptions())
	rnd := random.New(2)
	sample := DSS{Period: 5, Size: 3}.Sample(df, rnd)
	if len(sample.Examples) != 3 {
		t.Fatalf("expected 3 sampled examples, got %d", len(sample.Examples))
	}
}
