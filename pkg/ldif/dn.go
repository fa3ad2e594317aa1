package ldif

import "regexp"

// DN string-representation grammar. A DN is one or more relative DN
// components separated by commas, each component being attrType=value.
// Values may escape commas with a backslash or be double-quoted.
const (
	attrTypePattern  = `[\w;.]+(?:;[\w-]+)*`
	attrValuePattern = `(?:(?:[^,]|\\,)+|".*?")`
	rdnPattern       = attrTypePattern + `[ ]*=[ ]*` + attrValuePattern
	dnPattern        = `^` + rdnPattern + `(?:[ ]*,[ ]*` + rdnPattern + `)*[ ]*$`
)

var dnRegexp = regexp.MustCompile(dnPattern)

// IsDN reports whether s is a valid string representation of a
// distinguished name. The match is anchored: the whole string must
// conform to the grammar. The empty string is accepted and means
// "no DN".
func IsDN(s string) bool {
	if s == "" {
		return true
	}
	return dnRegexp.MatchString(s)
}

// NeedsBase64 reports whether value must be base64-encoded for transport
// in LDIF per the RFC 2849 SAFE-STRING rules. A value needs encoding if
// it starts with NUL, LF, CR, space, colon or '<', contains NUL, LF, CR
// or any byte >= 0x80, or ends with a space.
func NeedsBase64(value []byte) bool {
	if len(value) == 0 {
		return false
	}

	switch value[0] {
	case 0x00, '\n', '\r', ' ', ':', '<':
		return true
	}

	for _, b := range value {
		if b == 0x00 || b == '\n' || b == '\r' || b >= 0x80 {
			return true
		}
	}

	return value[len(value)-1] == ' '
}
