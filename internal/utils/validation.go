package utils

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an address. Verification records
// and member accounts are both keyed by the normalized form, so every
// email entering either flow goes through here first.
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// isValidEmailSyntax does RFC-5322-*ish* syntax only (no DNS).
// mail.ParseAddress is surprisingly strict and passes go-vet / go-net.
// Display-name forms ("Name <a@b>") are rejected, only bare addresses
// are accepted.
func isValidEmailSyntax(e string) bool {
	addr, err := mail.ParseAddress(e)
	return err == nil && addr.Address == e
}

// hasMX checks an MX record for the domain via the default resolver.
func hasMX(ctx context.Context, domain string) bool {
	mx, err := net.DefaultResolver.LookupMX(ctx, domain)
	return err == nil && len(mx) > 0
}

// ValidateEmail returns true if the string parses as an email and,
// when checkMX is set, its domain publishes at least one MX record.
// The MX lookup is skipped in tests and offline environments.
func ValidateEmail(ctx context.Context, email string, checkMX bool) bool {
	if !isValidEmailSyntax(email) {
		return false
	}

	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return false
	}

	if checkMX {
		return hasMX(ctx, parts[1])
	}
	return true
}
