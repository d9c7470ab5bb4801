package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ALH477/nixos-tui/internal/catalog"
)

var (
	// RFC 1123 label: alphanumeric with internal hyphens.
	hostnameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	// POSIX portable username.
	usernameRe = regexp.MustCompile(`^[a-z_][a-z0-9_-]*$`)
)

// validateField checks a committed edit against the field's rules and
// returns the parsed value. The raw string is trimmed first; validation
// failures leave the stored value untouched.
func validateField(f catalog.Field, raw string) (catalog.Value, error) {
	raw = strings.TrimSpace(raw)

	switch f.Type {
	case catalog.TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Value{}, fmt.Errorf("%q is not a number", raw)
		}
		if n < f.Min || n > f.Max {
			return catalog.Value{}, fmt.Errorf("%s must be between %d and %d", f.Label, f.Min, f.Max)
		}
		return catalog.Value{Int: n}, nil

	case catalog.TypeString:
		switch f.Validate {
		case catalog.ValidateHostname:
			if len(raw) == 0 || len(raw) > 63 || !hostnameRe.MatchString(raw) {
				return catalog.Value{}, fmt.Errorf("%q is not a valid hostname (letters, digits, internal hyphens, max 63)", raw)
			}
		case catalog.ValidateUsername:
			if len(raw) == 0 || len(raw) > 32 || !usernameRe.MatchString(raw) {
				return catalog.Value{}, fmt.Errorf("%q is not a valid username (lowercase, starts with letter or underscore)", raw)
			}
		}
		return catalog.Value{Str: raw}, nil
	}

	return catalog.Value{}, fmt.Errorf("field %s is not editable as text", f.Label)
}
