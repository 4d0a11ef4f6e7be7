package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_AmountEncodesAsNumber(t *testing.T) {
	data, err := json.Marshal(Transaction{Date: "2024-01-02", Amount: decimal.RequireFromString("-12.50")})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if v, ok := raw["amount"].(float64); !ok || v != -12.5 {
		t.Errorf("amount = %#v, want JSON number -12.5 in %s", raw["amount"], data)
	}
}

func TestTransaction_Month(t *testing.T) {
	tests := []struct {
		date   string
		want   string
		wantOK bool
	}{
		{"2024-03-05", "2024-03", true},
		{"2024-3-5", "", false},
		{"2024-03-05T00:00:00Z", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Transaction{Date: tt.date}.Month()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Month(%q) = %q, %v, want %q, %v", tt.date, got, ok, tt.want, tt.wantOK)
		}
	}
}
