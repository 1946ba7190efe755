package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"ponto_eletronica/internal/domain/entities"
)

// formatMoney prints v with two decimals and grouped thousands, e.g. "R$ 1.234,56".
func formatMoney(v entities.Amount, l Labels) string {
	cents := int64(math.Round(v.Float64() * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(l.Thousands)
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s%s%s%s%02d", sign, l.Currency, b.String(), l.Decimal, cents%100)
}

// formatDate prints a calendar date in the locale layout. Blank dates get the
// placeholder and dates that do not parse are printed as stored.
func formatDate(v string, l Labels) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return l.NotAvailable
	}
	t, err := time.Parse(entities.DateLayout, v)
	if err != nil {
		return v
	}
	return t.Format(l.DateLayout)
}

func formatGuarantee(days int, l Labels) string {
	if days <= 0 {
		return l.NoGuarantee
	}
	return fmt.Sprintf(l.GuaranteeDays, days)
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
