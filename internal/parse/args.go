// Package parse turns free-form slash-command argument strings into
// quantity sets. Parsing is deliberately tolerant: malformed tokens are
// skipped rather than rejected, so a partially garbled command still
// produces a best-effort solve.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/phystutor/internal/phys"
)

// numPrefix matches a leading signed numeric literal followed by an
// optional trailing unit string.
var numPrefix = regexp.MustCompile(`^([-+]?[0-9.]+)\s*(.*)$`)

// Args parses comma-separated "key=value[ unit]" tokens, e.g.
// "v0=0 m/s, a=2 m/s^2, t=5 s". Tokens without '=' or without a parsable
// numeric prefix are skipped. On duplicate keys the last occurrence wins.
func Args(s string) phys.QuantitySet {
	out := phys.QuantitySet{}

	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		key, rest, found := strings.Cut(tok, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		rest = strings.TrimSpace(rest)

		m := numPrefix.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		val, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		out[key] = phys.Quantity{Value: val, Unit: strings.TrimSpace(m[2])}
	}

	return out
}
