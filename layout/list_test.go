package layout

import "testing"

func TestNormalizeListMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"• First item", "- First item"},
		{"◦ Nested", "- Nested"},
		{"▪ Square", "- Square"},
		{"▸ Arrow", "- Arrow"},
		{"► Pointer", "- Pointer"},
		{"‣ Triangle", "- Triangle"},
		{"•Tight", "- Tight"},
		{"(1) Step one", "1. Step one"},
		{"(12) Step twelve", "12. Step twelve"},
		{"(a) Lettered", "(a) Lettered"},
		{"(1)no space", "(1)no space"},
		{"Plain text • with bullet", "Plain text • with bullet"},
		{"- already markdown", "- already markdown"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeListMarker(tt.in); got != tt.want {
			t.Errorf("NormalizeListMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsListItem(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"- item", true},
		{"* item", true},
		{"+ item", true},
		{"1. item", true},
		{"2) item", true},
		{"• item", true},
		{"-5 degrees", false},
		{"1.5 million", false},
		{"Heading", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsListItem(tt.in); got != tt.want {
			t.Errorf("IsListItem(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
