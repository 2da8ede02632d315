package domain

import "strings"

// NormalizePhone canonicalizes an Iranian mobile number to +98XXXXXXXXXX so
// two submissions of the same number always map to the same user row.
// Separators are stripped and Persian/Arabic digits are converted.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '۰' && r <= '۹': // Extended Arabic-Indic digits
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩': // Arabic-Indic digits
			b.WriteRune('0' + (r - '٠'))
		case r == '+':
			b.WriteRune(r)
		}
	}
	s := b.String()
	switch {
	case strings.HasPrefix(s, "+98"):
		return s
	case strings.HasPrefix(s, "0098"):
		return "+98" + s[4:]
	case strings.HasPrefix(s, "98") && len(s) == 12:
		return "+" + s
	case strings.HasPrefix(s, "0"):
		return "+98" + s[1:]
	default:
		return "+98" + s
	}
}

// MaskPhone hides the middle digits of a phone number for log output.
func MaskPhone(phone string) string {
	if len(phone) < 8 {
		return "***"
	}
	return phone[:5] + "****" + phone[len(phone)-3:]
}
