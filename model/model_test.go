package model

import "testing"

func TestTableToMarkdown(t *testing.T) {
	table := NewTableFromStrings([][]string{
		{"Name", "Qty", "Price"},
		{"Apple", "3", "1.20"},
		{"Pear", "5"},
	})

	want := "| Name | Qty | Price |\n" +
		"| --- | --- | --- |\n" +
		"| Apple | 3 | 1.20 |\n" +
		"| Pear | 5 |  |"

	if got := table.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableToMarkdownEscapesPipes(t *testing.T) {
	table := NewTableFromStrings([][]string{
		{"a|b", "c"},
		{"d", "e\nf"},
	})

	want := "| a\\|b | c |\n| --- | --- |\n| d | e f |"
	if got := table.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestTableToMarkdownEmpty(t *testing.T) {
	if got := (&Table{}).ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() = %q, want empty", got)
	}
}

func TestTableColCount(t *testing.T) {
	ragged := NewTableFromStrings([][]string{{"a"}, {"b", "c", "d"}})
	if ragged.ColCount() != 3 {
		t.Errorf("ragged ColCount() = %d, want 3", ragged.ColCount())
	}
}

func TestTablePad(t *testing.T) {
	table := NewTableFromStrings([][]string{{"a", "b", "c"}, {"d"}})
	table.Pad(3)
	for i, row := range table.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells after Pad(3)", i, len(row))
		}
	}
}

func TestDocumentMarkdown(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(1, "# One", 1))
	doc.AddPage(NewPage(2, "", 0))
	doc.AddPage(NewPage(3, "Three", 2))

	want := "# One\n\n---\n\nThree"
	if got := doc.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
	if doc.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", doc.PageCount())
	}
	if doc.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", doc.LineCount())
	}
	if !doc.Pages[1].IsEmpty() {
		t.Error("page 2 should be empty")
	}
}

func TestDocumentMarkdownEmpty(t *testing.T) {
	if got := NewDocument().Markdown(); got != "" {
		t.Errorf("Markdown() = %q, want empty", got)
	}
}
