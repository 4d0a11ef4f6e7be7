package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/classify"
	"github.com/theirongolddev/ledgerlens/internal/model"
)

var benchDescriptions = []string{
	"Pyaterochka supermarket", "Yandex taxi", "Bank transfer", "cinema park",
	"Lukoil gas station", "unknown merchant 42", "pharmacy vitamins", "salary",
}

func benchTransactions(n int) []model.Transaction {
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{
			Date:        fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			Amount:      decimal.NewFromInt(int64(i%500 - 400)),
			Description: benchDescriptions[i%len(benchDescriptions)],
		}
	}
	return txns
}

func BenchmarkCategorizeAll(b *testing.B) {
	txns := benchTransactions(10000)
	c := classify.New(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CategorizeAll(txns, c)
	}
}

func BenchmarkAggregate(b *testing.B) {
	txns := CategorizeAll(benchTransactions(10000), classify.New(nil))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BasicStats(txns)
		_ = ByCategory(txns)
		_ = ByTime(txns)
	}
}

func BenchmarkLoad(b *testing.B) {
	dir := b.TempDir()
	var sb strings.Builder
	sb.WriteString("date,amount,description,type\n")
	for _, t := range benchTransactions(5000) {
		fmt.Fprintf(&sb, "%s,%s,%s,\n", t.Date, t.Amount, t.Description)
	}
	for i := 0; i < 8; i++ {
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("part%d.csv", i)), []byte(sb.String()), 0o600); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(b.Context(), dir, nil); err != nil {
			b.Fatal(err)
		}
	}
}
