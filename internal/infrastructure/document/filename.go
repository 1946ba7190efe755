package document

import (
	"strings"
	"unicode"

	"ponto_eletronica/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	orderPrefix = "OS"
	quotePrefix = "ORC"
)

// Filename builds the download name, e.g. "OS_MARIA_DA_SILVA_3f2a9c1e.pdf".
// Quotes use the ORC prefix.
func Filename(o entities.ServiceOrder) string {
	parts := []string{orderPrefix}
	if o.IsQuote() {
		parts[0] = quotePrefix
	}
	if name := normalizeName(o.CustomerName); name != "" {
		parts = append(parts, name)
	}
	if id := normalizeName(o.ShortID()); id != "" {
		parts = append(parts, strings.ToLower(id))
	}
	return strings.Join(parts, "_") + ".pdf"
}

// normalizeName strips diacritics, upper-cases and replaces every run of
// characters outside [A-Z0-9] with a single underscore.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	underscore := false
	for _, r := range strings.ToUpper(plain) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
