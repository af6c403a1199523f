package layout

import (
	"strings"
	"testing"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
		{"unsorted odd", []float64{9, 1, 5}, 5},
		{"unsorted even", []float64{12, 10, 10, 24}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); got != tt.want {
				t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Median modified its input: %v", values)
	}
}

func TestBodyFontSize(t *testing.T) {
	config := DefaultBodyFontConfig()
	long := strings.Repeat("a", 20)

	tests := []struct {
		name  string
		pages [][]Line
		want  float64
	}{
		{
			name: "long lines across pages",
			pages: [][]Line{
				{{Text: long, FontSize: 10}, {Text: "Short", FontSize: 30}},
				{{Text: long, FontSize: 11}, {Text: long, FontSize: 12}},
			},
			want: 11,
		},
		{
			name: "tab lines excluded",
			pages: [][]Line{
				{{Text: long, FontSize: 10}, {Text: long + "\tcell", HasTabs: true, FontSize: 8}},
			},
			want: 10,
		},
		{
			name: "falls back to all lines",
			pages: [][]Line{
				{{Text: "Report Title", FontSize: 24}, {Text: "Short body", FontSize: 12}},
			},
			want: 18,
		},
		{
			name:  "no lines",
			pages: [][]Line{{}, nil},
			want:  DefaultNominalFontSize,
		},
		{
			name: "nineteen characters is not prose",
			pages: [][]Line{
				{{Text: strings.Repeat("b", 19), FontSize: 30}, {Text: long, FontSize: 9}},
			},
			want: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyFontSize(tt.pages, config); got != tt.want {
				t.Errorf("BodyFontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}
