package parser

import (
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Matemaatika", "Matemaatika"},
		{"Web_arendus", `Web\_arendus`},
		{"2*2 [A] `code`", "2\\*2 \\[A] \\`code\\`"},
		{"—", "—"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Сегодня", "*Сегодня*"},
		{"08:30-10:00: Web_arendus", "*08:30-10:00: Web_arendus*"},
		{"2*2=4", `*2*\**2=4*`},
	}
	for _, tt := range tests {
		if got := Bold(tt.in); got != tt.want {
			t.Errorf("Bold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
