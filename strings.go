package predz

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// NotEmpty passes strings with at least one byte.
func NotEmpty() Predicate[string] {
	return Lift("not-empty", func(value string) bool { return value != "" })
}

// Digits passes non-empty strings made entirely of decimal digits.
func Digits() Predicate[string] {
	return Lift("digits", allRunes(unicode.IsDigit))
}

// Alpha passes non-empty strings made entirely of letters.
func Alpha() Predicate[string] {
	return Lift("alpha", allRunes(unicode.IsLetter))
}

// Alnum passes non-empty strings made entirely of letters and digits.
func Alnum() Predicate[string] {
	return Lift("alnum", allRunes(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}))
}

// Uppercase passes strings that contain at least one cased rune and no
// lowercase runes.
func Uppercase() Predicate[string] {
	return Lift("uppercase", func(value string) bool {
		return cased(value) && !strings.ContainsFunc(value, unicode.IsLower)
	})
}

// Lowercase passes strings that contain at least one cased rune and no
// uppercase runes.
func Lowercase() Predicate[string] {
	return Lift("lowercase", func(value string) bool {
		return cased(value) && !strings.ContainsFunc(value, func(r rune) bool {
			return unicode.IsUpper(r) || unicode.IsTitle(r)
		})
	})
}

// TitleCase passes strings where every word starts with an uppercase rune
// followed only by lowercase runes, and at least one cased rune appears.
func TitleCase() Predicate[string] {
	return Lift("title-case", func(value string) bool {
		sawCased := false
		prevCased := false
		for _, r := range value {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				if prevCased {
					return false
				}
				sawCased = true
				prevCased = true
			case unicode.IsLower(r):
				if !prevCased {
					return false
				}
				sawCased = true
			default:
				prevCased = false
			}
		}
		return sawCased
	})
}

// HasPrefix passes strings that start with prefix.
func HasPrefix(prefix string) Predicate[string] {
	return Lift(fmt.Sprintf("has-prefix(%q)", prefix), func(value string) bool {
		return strings.HasPrefix(value, prefix)
	})
}

// HasSuffix passes strings that end with suffix.
func HasSuffix(suffix string) Predicate[string] {
	return Lift(fmt.Sprintf("has-suffix(%q)", suffix), func(value string) bool {
		return strings.HasSuffix(value, suffix)
	})
}

// Contains passes strings that contain substr.
func Contains(substr string) Predicate[string] {
	return Lift(fmt.Sprintf("contains(%q)", substr), func(value string) bool {
		return strings.Contains(value, substr)
	})
}

// Matches passes strings matched by the compiled expression.
func Matches(re *regexp.Regexp) Predicate[string] {
	return Lift(fmt.Sprintf("matches(%s)", re), re.MatchString)
}

func allRunes(ok func(rune) bool) func(string) bool {
	return func(value string) bool {
		if value == "" {
			return false
		}
		for _, r := range value {
			if !ok(r) {
				return false
			}
		}
		return true
	}
}

func cased(value string) bool {
	return strings.ContainsFunc(value, func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
	})
}
