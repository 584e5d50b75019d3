package entity

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// space matches every whitespace rune, not only the ASCII ones \s covers.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d` + space + `\-()]+$`)
)

const minPhoneDigits = 10

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is made of phone characters and holds at least ten digits.
func IsValidPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits
}

// IsValidWalletAddress reports whether s is "0x" followed by 40 hex characters.
func IsValidWalletAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}
