package models

import "github.com/dchest/uniuri"

// Public ids are 24 lowercase hex characters, the identifier shape the
// platform's clients already accept in path segments.
var publicIdChars = []byte("0123456789abcdef")

func NewPublicId() string {
	return uniuri.NewLenChars(24, publicIdChars)
}

// IsPublicId reports whether s looks like a valid public id. Lookups on
// anything else are answered as not found rather than bad request.
func IsPublicId(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}
