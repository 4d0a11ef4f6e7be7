package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in    string
		label string
		want  string
	}{
		{"0", "rub.", "0.00 rub."},
		{"1234.5", "rub.", "1,234.50 rub."},
		{"-1234567.891", "rub.", "-1,234,567.89 rub."},
		{"999.999", "", "1,000.00"},
		{"100", "$", "100.00 $"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), tt.label)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tt.in, tt.label, got, tt.want)
		}
	}
}

func TestFormatWholeMoney(t *testing.T) {
	if got := FormatWholeMoney(decimal.RequireFromString("1234.5"), "rub."); got != "1,235 rub." {
		t.Errorf("FormatWholeMoney = %q, want 1,235 rub.", got)
	}
	if got := FormatWholeMoney(decimal.RequireFromString("-1234.5"), ""); got != "-1,235" {
		t.Errorf("FormatWholeMoney(neg) = %q, want -1,235", got)
	}
}

func TestFormatPercentAndSigned(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("45.5")); got != "45.50%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatSigned(decimal.NewFromInt(1000)); got != "+1,000.00" {
		t.Errorf("FormatSigned(+) = %q", got)
	}
	if got := FormatSigned(decimal.RequireFromString("-3.5")); got != "-3.50" {
		t.Errorf("FormatSigned(-) = %q", got)
	}
	if got := FormatSigned(decimal.Zero); got != "0.00" {
		t.Errorf("FormatSigned(0) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -4321: "-4,321"}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
