package normalize

import (
	"encoding/json"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		isNil bool
	}{
		{"trims whitespace", "  2021 Countryman S  ", "2021 Countryman S", false},
		{"empty", "", "", true},
		{"whitespace only", "   \t ", "", true},
		{"nfkc fullwidth digits", "２０２１", "2021", false},
		{"plain text untouched", "Cooper S", "Cooper S", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)

			if tt.isNil {
				if got != nil {
					t.Errorf("NormalizeText(%q) = %q, want nil", tt.input, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("NormalizeText(%q) = nil, want %q", tt.input, tt.want)
			}

			if *got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, *got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
		isNil bool
	}{
		{"currency with comma", "$24,500", 24500, false},
		{"mileage with unit", "120,000 km", 120000, false},
		{"plain digits", "2021", 2021, false},
		{"negative", "-5", -5, false},
		{"nil", nil, 0, true},
		{"empty string", "", 0, true},
		{"no digits", "call for price", 0, true},
		{"stray minus makes it unparseable", "1-2", 0, true},
		{"json float", float64(25000), 25000, false},
		{"json number", json.Number("40000"), 40000, false},
		{"int passthrough", 7, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInt(tt.input)

			if tt.isNil {
				if got != nil {
					t.Errorf("ParseInt(%v) = %d, want nil", tt.input, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("ParseInt(%v) = nil, want %d", tt.input, tt.want)
			}

			if *got != tt.want {
				t.Errorf("ParseInt(%v) = %d, want %d", tt.input, *got, tt.want)
			}
		})
	}
}

func TestCanonicalizeLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		isNil bool
	}{
		{"comma separated", "toronto, ontario", "Toronto, Ontario", false},
		{"slash separated", "calgary / alberta", "Calgary, Alberta", false},
		{"pipe separated", "moncton|new brunswick", "Moncton, New Brunswick", false},
		{"single component", "saskatchewan", "Saskatchewan", false},
		{"three parts keeps first two", "riverdale, toronto, ontario", "Riverdale, Toronto", false},
		{"empty parts dropped", " , vancouver , bc", "Vancouver, Bc", false},
		{"empty", "", "", true},
		{"only separators", ",,/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalizeLocation(tt.input)

			if tt.isNil {
				if got != nil {
					t.Errorf("CanonicalizeLocation(%q) = %q, want nil", tt.input, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("CanonicalizeLocation(%q) = nil, want %q", tt.input, tt.want)
			}

			if *got != tt.want {
				t.Errorf("CanonicalizeLocation(%q) = %q, want %q", tt.input, *got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"automatic", "Automatic"},
		{"MANUAL", "Manual"},
		{"gas", "Gas"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanDealTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Great price!", "Great"},
		{"good deal", "Good"},
		{"Fair price", "Fair"},
		{"Overpriced", "Overpriced"},
		{"", "Unknown"},
		{"no analysis", "Unknown"},
	}

	for _, tt := range tests {
		if got := CleanDealTag(tt.input); got != tt.want {
			t.Errorf("CleanDealTag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
