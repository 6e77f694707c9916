package text

import "testing"

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice", "Alice"},
		{"a\tb", "a b"},
		{"line1\nline2", `line1\nline2`},
		{"\x1b[31mred", `\e[31mred`},
		{"bell\x07", `bell\x07`},
		{"del\x7f", `del\x7F`},
		{"c1\u0085", "c1U+0085"},
		{"café ✓", "café ✓"},
	}
	for _, tt := range tests {
		if got := SanitizeLine(tt.in); got != tt.want {
			t.Errorf("SanitizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
