package logger

import "strings"

// MaskEmail keeps the first character of the local part.
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	return username[:1] + "***@" + domain
}

// MaskName keeps the first word and the initial of every other word.
// Example: "María José Pérez Soto" -> "María J. P. S."
func MaskName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	masked := make([]string, 0, len(words))
	masked = append(masked, words[0])
	for _, w := range words[1:] {
		r := []rune(w)
		masked = append(masked, string(r[0])+".")
	}
	return strings.Join(masked, " ")
}
