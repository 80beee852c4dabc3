package money

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"ruble suffix with space separator", 4800, "RUB", "4 800.00 ₽"},
		{"som suffix with comma separator", 33500, "UZS", "33,500.00 som"},
		{"dollar prefix", 1234567.5, "USD", "$1,234,567.50"},
		{"euro suffix", 950, "EUR", "950.00 €"},
		{"small amount no grouping", 42.5, "USD", "$42.50"},
		{"zero", 0, "RUB", "0.00 ₽"},
		{"negative", -1600, "USD", "$-1,600.00"},
		{"rounds to cents", 10.006, "USD", "$10.01"},
		{"negative rounding to zero keeps no sign", -0.001, "USD", "$0.00"},
		{"unknown code falls back to ruble", 100, "GBP", "100.00 ₽"},
		{"empty code falls back to ruble", 100, "", "100.00 ₽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.amount, tt.code)
			if got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestFormatDeterministic(t *testing.T) {
	first := Format(98765.43, "UZS")
	for i := 0; i < 100; i++ {
		if got := Format(98765.43, "UZS"); got != first {
			t.Fatalf("Format not deterministic: got %q, want %q", got, first)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, code := range []string{"RUB", "UZS", "USD", "EUR"} {
		if !Known(code) {
			t.Errorf("Known(%q) = false, want true", code)
		}
	}
	if Known("XYZ") {
		t.Error("Known(\"XYZ\") = true, want false")
	}
}
