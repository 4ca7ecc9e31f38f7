package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/report"
	"github.com/matzehuels/tileplan/pkg/shape"
)

const studio = "testdata/studio.toml"

func TestCalculate(t *testing.T) {
	got, err := execute(t, "calculate", studio)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	for _, want := range []string{"Studio", "grid", "12 tiles", "14 tiles", "12 full"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCalculateJSON(t *testing.T) {
	got, err := execute(t, "calculate", studio, "--json", "--pattern", "brick")
	if err != nil {
		t.Fatal(err)
	}
	var res pipeline.Result
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("output is not a result: %v\n%s", err, got)
	}
	if res.Generation.Pattern != "brick" {
		t.Errorf("Pattern = %q, want brick", res.Generation.Pattern)
	}
}

func TestCalculateOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if _, err := execute(t, "calculate", studio, "-o", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var res pipeline.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Generation.TotalTiles != 12 {
		t.Errorf("TotalTiles = %d, want 12", res.Generation.TotalTiles)
	}
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"calculate", "testdata/nope.toml"}, errors.ErrCodeFileNotFound},
		{"unsupported pattern", []string{"calculate", studio, "--pattern", "hexagonal"}, errors.ErrCodeUnsupportedPattern},
		{"bad clip mode", []string{"calculate", studio, "--clip", "fuzzy"}, errors.ErrCodeInvalidInput},
		{"open outline", []string{"calculate", "testdata/open.json"}, errors.ErrCodeInvalidPolygon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	got, err := execute(t, "validate", studio)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "outline is valid") {
		t.Errorf("output = %q", got)
	}

	got, err = execute(t, "validate", "testdata/open.json", "--json")
	if !errors.Is(err, errors.ErrCodeInvalidPolygon) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidPolygon)
	}
	var v shape.ValidationResult
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatal(err)
	}
	if v.IsClosed {
		t.Error("open outline reported as closed")
	}
}

func TestCompare(t *testing.T) {
	got, err := execute(t, "compare", studio, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var results []pipeline.Result
	if err := json.Unmarshal([]byte(got), &results); err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}

	got, err = execute(t, "compare", studio, "--patterns", "grid, brick")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"grid", "brick", "report"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "herringbone") {
		t.Error("table lists a pattern that was not requested")
	}
}

func TestReport(t *testing.T) {
	got, err := execute(t, "report", studio)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Studio", "Shopping list", "Cost", "175.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}

	got, err = execute(t, "report", studio, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var r report.Report
	if err := json.Unmarshal([]byte(got), &r); err != nil {
		t.Fatal(err)
	}
	if r.ShoppingList.Tiles.Count != 14 {
		t.Errorf("ShoppingList.Tiles.Count = %d, want 14", r.ShoppingList.Tiles.Count)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"grid", []string{"grid"}},
		{"grid, brick ,", []string{"grid", "brick"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
