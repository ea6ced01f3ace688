// Package rut normalizes and formats Chilean national IDs (RUT).
//
// The canonical form is "<digits>-<check>" with no leading zeros and an
// uppercase check character. Normalization only reshapes formatting: the
// check digit is never verified against the number (no modulo-11), so an ID
// with an arithmetically wrong check digit still normalizes.
package rut

import (
	"strings"
)

// Normalize converts a raw RUT into its canonical form.
// It returns "" when fewer than two digit/K characters remain.
//
//	Normalize("10.017.452-9") == "10017452-9"
//	Normalize("10017452k")    == "10017452-K"
func Normalize(raw string) string {
	clean := Clean(raw)
	if len(clean) < 2 {
		return ""
	}

	check := clean[len(clean)-1:]
	number := strings.TrimLeft(clean[:len(clean)-1], "0")
	if number == "" {
		number = "0"
	}

	return number + "-" + check
}

// Clean uppercases raw and keeps only digits and 'K'.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if (r >= '0' && r <= '9') || r == 'K' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DigitsOnly keeps only the ASCII digits of s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Split returns the number and check parts of a RUT after normalizing it.
func Split(id string) (number, check string, ok bool) {
	parts := strings.Split(Normalize(id), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Format renders a RUT for display with thousands separators.
// Input that cannot be split is returned unchanged.
//
//	Format("9313137-1") == "9.313.137-1"
func Format(id string) string {
	number, check, ok := Split(id)
	if !ok {
		return id
	}
	return groupThousands(number) + "-" + check
}

// Mask hides the middle group of a RUT for public display.
//
//	Mask("9313137-1") == "9.313.***-1"
func Mask(id string) string {
	number, check, ok := Split(id)
	if !ok {
		return "***"
	}

	if len(number) <= 3 {
		return strings.Repeat("*", len(number)) + "-" + check
	}

	visible := number[:len(number)-3]
	return groupThousands(visible) + ".***-" + check
}

func groupThousands(number string) string {
	if len(number) <= 3 {
		return number
	}

	var b strings.Builder
	head := len(number) % 3
	if head > 0 {
		b.WriteString(number[:head])
	}
	for i := head; i < len(number); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(number[i : i+3])
	}
	return b.String()
}
