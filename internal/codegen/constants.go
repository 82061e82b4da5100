// Package codegen emits a standalone Go source file holding a precomputed
// lookup table for a small enumerable language, using jennifer to build the
// syntax tree and go/format to render it.
package codegen

// WordsSuffix and AtSuffix name the generated declarations: a pattern named
// "digit" produces digitWords and DigitAt.
const (
	WordsSuffix = "Words"
	AtSuffix    = "At"
)

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if 'A' <= c && c <= 'Z' {
		c |= 0x20
	}
	return string(c) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if 'a' <= c && c <= 'z' {
		c &^= 0x20
	}
	return string(c) + s[1:]
}
