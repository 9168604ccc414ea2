// Package scanner provides validation helpers for the dot paths used
// by variable-reference blocks.
package scanner

import (
	"fmt"
	"strings"
	"unicode"
)

// IsValidPath returns true if the given string is a valid variable dot
// path: one or more non-empty segments separated by periods, where each
// segment is made of letters, digits and underscores. A segment of
// only digits addresses an array index.
func IsValidPath(in string) bool {
	if in == "" {
		return false
	}
	for _, seg := range strings.Split(in, ".") {
		if !isValidSegment(seg) {
			return false
		}
	}
	return true
}

// SanitizePath will return the given string mutated into a valid
// variable path. If the given string is already a valid path, it will
// be returned unchanged.
//
// This should be used with caution since different inputs can result
// in identical outputs.
func SanitizePath(in string) (string, error) {
	if in == "" {
		return "", fmt.Errorf("cannot generate a new path for an empty string")
	}

	if IsValidPath(in) {
		return in, nil
	}

	newValue := generateNewPath(in)
	if !IsValidPath(newValue) {
		panic(fmt.Errorf("invalid path %q generated for `%q`", newValue, in))
	}

	return newValue, nil
}

// generateNewPath replaces every character that is invalid inside a
// path segment with an underscore, keeping the period separators.
func generateNewPath(in string) string {
	segments := strings.Split(in, ".")
	for i, seg := range segments {
		if isValidSegment(seg) {
			continue
		}
		newSeg := ""
		for _, c := range seg {
			if isLetter(c) || isDigit(c) {
				newSeg += string(c)
				continue
			}
			newSeg += "_"
		}
		if newSeg == "" {
			newSeg = "_"
		}
		segments[i] = newSeg
	}
	return strings.Join(segments, ".")
}

func isValidSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for _, c := range seg {
		if !isLetter(c) && !isDigit(c) {
			return false
		}
	}
	return true
}

func isLetter(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
