package dpp

import "strings"

// AKM is a bitmask of Authentication and Key Management suites a
// configuration object's "akm" string can name. There are no separate FT
// bits: ParseAKM accepts only the "psk" and "sae" tokens, and an FT token
// such as "ft-psk" is rejected like any other unknown token.
type AKM uint32

const (
	AKMPSK AKM = 1 << iota
	AKMSAE
)

// ParseAKM decodes a "+"-joined AKM token list (e.g. "psk+sae"). Any token
// that names no recognized suite causes the whole set to be rejected: a
// configuration object naming an AKM this module cannot use is unsafe to
// accept silently.
func ParseAKM(s string) (AKM, bool) {
	var out AKM
	for _, tok := range strings.Split(s, "+") {
		switch tok {
		case "psk":
			out |= AKMPSK
		case "sae":
			out |= AKMSAE
		default:
			return 0, false
		}
	}
	if out == 0 {
		return 0, false
	}
	return out, true
}

// String renders the AKM set back to its "+"-joined token form, psk before
// sae to match the canonical ordering configuration objects are generated
// with.
func (a AKM) String() string {
	var parts []string
	if a&AKMPSK != 0 {
		parts = append(parts, "psk")
	}
	if a&AKMSAE != 0 {
		parts = append(parts, "sae")
	}
	return strings.Join(parts, "+")
}
