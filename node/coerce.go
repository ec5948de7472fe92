package node

import (
	"math"
	"strconv"
	"strings"
)

// Scalar text is kept verbatim until a typed accessor asks for it. The
// recognized forms follow the YAML core schema.

// Bool reports the scalar's boolean value when its text is a boolean
// literal.
func (n *Node) Bool() (bool, bool) {
	if n.kind != ScalarKind {
		return false, false
	}
	switch n.scalar {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

// Int reports the scalar's integer value when its text is a decimal,
// hexadecimal (0x) or octal (0o) integer literal.
func (n *Node) Int() (int64, bool) {
	if n.kind != ScalarKind {
		return 0, false
	}
	s := n.scalar
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// Float reports the scalar's floating point value when its text is a
// float literal, including .inf and .nan forms. Integer literals also
// coerce.
func (n *Node) Float() (float64, bool) {
	if n.kind != ScalarKind {
		return 0, false
	}
	s := n.scalar
	sign := 1.0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1.0
		}
		s = s[1:]
	}
	switch s {
	case ".inf", ".Inf", ".INF":
		return sign * math.Inf(1), true
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), true
	}
	if v, ok := n.Int(); ok {
		return float64(v), true
	}
	if s == "" || !isFloatText(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return sign * v, true
}

// isFloatText rejects the forms strconv accepts but YAML does not, such
// as "0x1p4", "inf" and "nan".
func isFloatText(s string) bool {
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.':
			dot = true
		case c == 'e' || c == 'E':
			rest := s[i+1:]
			if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
				rest = rest[1:]
			}
			if rest == "" {
				return false
			}
			for j := 0; j < len(rest); j++ {
				if rest[j] < '0' || rest[j] > '9' {
					return false
				}
			}
			return true
		default:
			return false
		}
	}
	return dot
}

// IsNullLiteral reports whether the plain scalar text s spells null.
func IsNullLiteral(s string) bool {
	switch s {
	case "", "~", "null", "Null", "NULL":
		return true
	}
	return false
}
