package validate

import "strings"

// IsCreditCard reports whether s passes the Luhn checksum used by major
// payment card networks. Spaces and dashes are stripped before validation.
// Only the checksum is verified; issuance, expiry, and card status are not.
func IsCreditCard(s string) bool {
	if s == "" {
		return false
	}

	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	// Luhn: from the right, digits at odd positions count unchanged; digits
	// at even positions are doubled, subtracting 9 when the result exceeds 9.
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
