package validate

import "strings"

const (
	ReferralCodeLength   = 8
	ReferralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// IsReferralCode reports whether s has the shape of a generated referral code.
func IsReferralCode(s string) bool {
	if len(s) != ReferralCodeLength {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(ReferralCodeAlphabet, r) {
			return false
		}
	}
	return true
}

// IsUsername accepts 3 to 50 characters of letters, digits, underscores and dots.
func IsUsername(s string) bool {
	if len(s) < 3 || len(s) > 50 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
