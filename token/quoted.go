// Package token holds the scalar quoting policy.
package token

import "strings"

// NeedsQuote reports whether a string value must be quoted to keep its
// meaning in block-style output. Only space and colon trigger quoting;
// everything else passes through plain.
func NeedsQuote(v string) bool {
	return strings.ContainsAny(v, " :")
}

// Quote wraps v in double quotes verbatim. Embedded double quotes and
// backslashes are not escaped, so such values can produce text a strict
// reader rejects. Keys are never quoted at all.
func Quote(v string) string {
	return `"` + v + `"`
}
