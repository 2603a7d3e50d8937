package service

import "unicode"

// validatePassword enforces the account credential policy: at least
// eight characters with one uppercase letter, one digit and one symbol.
// Length is already checked at the DTO boundary but is re-checked here
// so the policy holds for callers that bypass binding (bootstrap).
func validatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasDigit && hasSymbol
}
