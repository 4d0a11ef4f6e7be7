// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with thousands separators, two decimals
// and a currency label: 1234.5 -> "1,234.50 rub.".
func FormatMoney(d decimal.Decimal, label string) string {
	return withLabel(groupDecimal(d.StringFixed(2)), label)
}

// FormatWholeMoney formats an amount rounded to whole units:
// 1234.5 -> "1,235 rub.".
func FormatWholeMoney(d decimal.Decimal, label string) string {
	return withLabel(groupDecimal(d.StringFixed(0)), label)
}

// FormatPercent formats a value already expressed in percent: 45.5 -> "45.50%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatSigned formats an amount with an explicit sign: "+10.00", "-3.50".
func FormatSigned(d decimal.Decimal) string {
	s := groupDecimal(d.StringFixed(2))
	if d.IsPositive() {
		return "+" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

func withLabel(s, label string) string {
	if label == "" {
		return s
	}
	return s + " " + label
}

// groupDecimal inserts separators into the integer part of a plain
// decimal string such as "-1234567.89".
func groupDecimal(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i:]
	}
	return sign + groupDigits(s) + frac
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
