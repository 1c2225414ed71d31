package service

import "strings"

// Placeholder addresses some payment forms submit when the donor leaves the
// email field blank.
var placeholderEmails = map[string]struct{}{
	"anonymous@example.com": {},
	"noemail@example.com":   {},
	"donor@example.com":     {},
}

// IsAnonymousDonor reports whether a donation should be published without
// donor attribution. A donor is anonymous when no email was collected, the
// email is a known placeholder, or the donor typed "Anonymous" as their name.
func IsAnonymousDonor(name, email string) bool {
	if email == "" {
		return true
	}

	if _, ok := placeholderEmails[strings.ToLower(email)]; ok {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(name), "anonymous")
}
