package popdb

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeZip canonicalises a postal code before it crosses the library
// boundary. Compatibility forms are folded (NFKC turns full-width "１０１８６"
// into "10186") and surrounding white space is dropped. Empty codes and codes
// containing NUL, which a C string cannot carry, are rejected.
func NormalizeZip(zip string) (string, error) {
	z := strings.TrimSpace(norm.NFKC.String(zip))
	if z == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidZip)
	}
	if strings.IndexByte(z, 0) >= 0 {
		return "", fmt.Errorf("%w: %q contains NUL", ErrInvalidZip, zip)
	}
	return z, nil
}
