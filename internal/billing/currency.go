package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBRL renders a value as a pt-BR currency display string:
// 1234.5 -> "R$ 1.234,50". Amounts are stored in this shape.
func FormatBRL(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))
	intPart := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// ParseBRL parses a pt-BR currency display string back into a float. The
// currency symbol, spaces and thousands separators are stripped and the
// decimal comma normalized, so FormatBRL round-trips exactly for two-decimal
// values. Plain numeric strings ("150" or "150,50") are accepted too.
func ParseBRL(s string) (float64, error) {
	cleaned := strings.NewReplacer("R$", "", " ", "", " ", "", ".", "").Replace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, fmt.Errorf("empty currency value")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency value %q", s)
	}
	return v, nil
}
