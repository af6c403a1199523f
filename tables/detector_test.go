package tables

import (
	"testing"

	"github.com/tsawler/pdfmd/layout"
)

func tabLines(texts ...string) []layout.Line {
	lines := make([]layout.Line, len(texts))
	for i, s := range texts {
		lines[i] = layout.Line{Text: s, HasTabs: true, FontSize: 10}
	}
	return lines
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.MinRows != 2 || config.MinCols != 2 || config.MaxColumnSpread != 1 {
		t.Errorf("DefaultConfig() = %+v", config)
	}
}

func TestSplitCells(t *testing.T) {
	got := SplitCells(" a \tb\t c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitCells() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReconstruct_AcceptsRaggedByOne(t *testing.T) {
	block := tabLines("Name\tQty\tPrice", "Apple\t3\t1.20", "Pear\t5")

	result := Reconstruct(block, DefaultConfig())
	table, ok := result.(*Table)
	if !ok {
		t.Fatalf("expected *Table, got %T", result)
	}
	if table.ColCount() != 3 {
		t.Errorf("ColCount() = %d, want 3", table.ColCount())
	}
	for i, row := range table.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}

	want := "| Name | Qty | Price |\n" +
		"| --- | --- | --- |\n" +
		"| Apple | 3 | 1.20 |\n" +
		"| Pear | 5 |  |"
	if got := result.Markdown(); got != want {
		t.Errorf("Markdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestReconstruct_RejectsWideSpread(t *testing.T) {
	block := tabLines("a\tb", "1\t2\t3\t4\t5")

	result := Reconstruct(block, DefaultConfig())
	flat, ok := result.(*FlattenedLines)
	if !ok {
		t.Fatalf("expected *FlattenedLines, got %T", result)
	}

	want := "a b\n1 2 3 4 5"
	if got := flat.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestReconstruct_SingleRowFlattened(t *testing.T) {
	result := Reconstruct(tabLines("• Item\tdetail"), DefaultConfig())
	flat, ok := result.(*FlattenedLines)
	if !ok {
		t.Fatalf("expected *FlattenedLines, got %T", result)
	}
	if len(flat.Lines) != 1 || flat.Lines[0] != "- Item detail" {
		t.Errorf("Lines = %q, want [\"- Item detail\"]", flat.Lines)
	}
}

func TestReconstruct_EscapesPipes(t *testing.T) {
	result := Reconstruct(tabLines("x|y\tz", "1\t2"), DefaultConfig())
	want := "| x\\|y | z |\n| --- | --- |\n| 1 | 2 |"
	if got := result.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestConfigAccepts(t *testing.T) {
	config := DefaultConfig()
	tests := []struct {
		name string
		rows [][]string
		want bool
	}{
		{"empty", nil, false},
		{"one row", [][]string{{"a", "b"}}, false},
		{"single column", [][]string{{"a"}, {"b"}}, false},
		{"two by two", [][]string{{"a", "b"}, {"c", "d"}}, true},
		{"counts 3 3 2", [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g", "h"}}, true},
		{"counts 2 5", [][]string{{"a", "b"}, {"1", "2", "3", "4", "5"}}, false},
		{"counts 1 2", [][]string{{"a"}, {"b", "c"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.Accepts(tt.rows); got != tt.want {
				t.Errorf("Accepts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlattenDropsEmptyLines(t *testing.T) {
	flat := Flatten([]layout.Line{{Text: "\t"}, {Text: "(2)  second\titem"}})
	if len(flat.Lines) != 1 || flat.Lines[0] != "2. second item" {
		t.Errorf("Flatten() = %q", flat.Lines)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}

	bad := []Config{
		{MinRows: 0, MinCols: 2, MaxColumnSpread: 1},
		{MinRows: 2, MinCols: 0, MaxColumnSpread: 1},
		{MinRows: 2, MinCols: 2, MaxColumnSpread: -1},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("%+v.Validate() = nil, want error", c)
		}
	}
}
