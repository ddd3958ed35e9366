package textutil

import (
	"strings"
	"testing"
)

func TestSplitAnnotations(t *testing.T) {
	tests := []struct {
		in        string
		wantBase  string
		wantNotes []string
	}{
		{"Tunji Leke (M) (Late)", "Tunji Leke", []string{"(M)", "(Late)"}},
		{"Bamigbe Leke (F) (Married to Akinjile)", "Bamigbe Leke", []string{"(F)", "(Married to Akinjile)"}},
		{"Sunday Leke (Late)", "Sunday Leke", []string{"(Late)"}},
		{"Ogo-oluwa Leke", "Ogo-oluwa Leke", nil},
		{"(Nee ebiesuwa)", "(Nee ebiesuwa)", nil},
		{"Odd Name)", "Odd Name)", nil},
		{"Ade(M)", "Ade(M)", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		base, notes := SplitAnnotations(tt.in)
		if base != tt.wantBase {
			t.Errorf("SplitAnnotations(%q) base = %q, want %q", tt.in, base, tt.wantBase)
		}
		if strings.Join(notes, "|") != strings.Join(tt.wantNotes, "|") {
			t.Errorf("SplitAnnotations(%q) notes = %q, want %q", tt.in, notes, tt.wantNotes)
		}
		if tt.in != "" {
			joined := strings.Join(append([]string{base}, notes...), " ")
			if joined != tt.in {
				t.Errorf("rejoined %q != %q", joined, tt.in)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Hosea Leke", 20, "Hosea Leke"},
		{"Hosea Leke", 10, "Hosea Leke"},
		{"Hosea Leke", 8, "Hosea..."},
		{"Hosea Leke", 3, "Hos"},
		{"Hosea Leke", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if w := Width("Anu Leke (F)"); w != 12 {
		t.Errorf("Width = %d, want 12", w)
	}
}
