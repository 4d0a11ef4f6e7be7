package theme

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"tokyo-night", "tokyo-night"},
		{"terminal", "terminal"},
		{"", "flexoki-dark"},
		{"no-such-theme", "flexoki-dark"},
	}
	for _, tt := range tests {
		if got := ByName(tt.name).Name; got != tt.want {
			t.Errorf("ByName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("catppuccin-mocha")
	if Active.Name != "catppuccin-mocha" {
		t.Errorf("Active = %q, want catppuccin-mocha", Active.Name)
	}
}
