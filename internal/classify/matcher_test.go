package classify

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		description string
		keyword     string
		want        int
	}{
		{"exact word", "taxi to the office", "taxi", ScoreExact},
		{"exact at end", "evening taxi", "taxi", ScoreExact},
		{"case insensitive", "TAXI Comfort", "taxi", ScoreExact},
		{"prefix of token", "taxis downtown", "taxi", ScorePrefix},
		{"inside token", "metaxis", "taxi", ScoreNone},
		{"suffix of token", "scar", "car", ScoreNone},
		{"underscore is a word char", "car_wash", "car", ScorePrefix},
		{"later exact beats earlier prefix", "carsharing car", "car", ScoreExact},
		{"punctuation boundary", "m.video store", "video", ScoreExact},
		{"keyword with punctuation", "x-ray clinic", "x-ray", ScoreExact},
		{"multi word keyword", "lukoil gas station 12", "gas station", ScoreExact},
		{"unicode exact", "магазин продукты", "продукты", ScoreExact},
		{"unicode prefix", "продуктовый", "продукт", ScorePrefix},
		{"unrelated", "coffee beans", "taxi", ScoreNone},
		{"empty description", "", "taxi", ScoreNone},
		{"empty keyword", "taxi", "", ScoreNone},
		{"keyword longer than text", "tax", "taxi", ScoreNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.description, tt.keyword); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.description, tt.keyword, got, tt.want)
			}
		})
	}
}

// FuzzScore checks the matcher never panics on arbitrary input and only
// returns the documented scores.
func FuzzScore(f *testing.F) {
	f.Add("taxi ride", "taxi")
	f.Add("pharmacies", "pharmacy")
	f.Add("магазин", "маг")
	f.Add("\xff\xfe", "\xff")
	f.Add("", "")
	f.Add("aaa", "aa")

	f.Fuzz(func(t *testing.T, description, keyword string) {
		switch got := Score(description, keyword); got {
		case ScoreNone, ScorePrefix, ScoreExact:
		default:
			t.Errorf("Score(%q, %q) = %d", description, keyword, got)
		}
	})
}
