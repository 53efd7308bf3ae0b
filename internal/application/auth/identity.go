package auth

import "strings"

// NormalizeEmail canonicalizes an email for storage and lookup. Applied on
// both the write path (signup) and the read path (login) so the same address
// always lands on the same row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolveIdentifier picks the login identifier from the three accepted
// request fields. Precedence: identifier, then email, then matricNumber.
// The winner is used for BOTH columns of the credential lookup, so a client
// may send a matric number in the email field (or vice versa) and still log
// in. Matric numbers are matched exactly, so the lowercased copy used for
// the email column never causes a false match on the matric column.
func ResolveIdentifier(identifier, email, matricNumber string) (string, bool) {
	switch {
	case strings.TrimSpace(identifier) != "":
		return strings.TrimSpace(identifier), true
	case strings.TrimSpace(email) != "":
		return strings.TrimSpace(email), true
	case strings.TrimSpace(matricNumber) != "":
		return strings.TrimSpace(matricNumber), true
	}
	return "", false
}
