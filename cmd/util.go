package main

import (
	"strings"
)

// miscellaneous utility functions

func firstElementOf(s []string) string {
	// return first element of slice, or blank string if empty
	val := ""

	if len(s) > 0 {
		val = s[0]
	}

	return val
}

func sliceContainsString(haystack []string, needle string, insensitive bool) bool {
	if len(haystack) == 0 {
		return false
	}

	for _, item := range haystack {
		a := item
		b := needle

		if insensitive == true {
			a = strings.ToLower(item)
			b = strings.ToLower(needle)
		}

		if a == b {
			return true
		}
	}

	return false
}

func sliceContainsAnyValueFromSlice(haystack []string, needles []string, insensitive bool) bool {
	if len(haystack) == 0 || len(needles) == 0 {
		return false
	}

	for _, needle := range needles {
		if sliceContainsString(haystack, needle, insensitive) == true {
			return true
		}
	}

	return false
}

func nonemptyValues(val []string) []string {
	res := []string{}

	for _, s := range val {
		if s != "" {
			res = append(res, s)
		}
	}

	return res
}

func uniqueStrings(s []string) []string {
	var uniq []string

	seen := make(map[string]bool)

	for _, val := range s {
		if seen[val] == false {
			uniq = append(uniq, val)
			seen[val] = true
		}
	}

	return uniq
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

// stripPunctuation removes trailing commas, semicolons, backslashes and
// whitespace.  Used for facet/display variants only; free-text fields keep
// their punctuation.  Trailing periods are intentionally left alone.
func stripPunctuation(s string) string {
	return strings.TrimRight(s, ",;\\ \t")
}

func stripPunctuationAll(vals []string) []string {
	var out []string

	for _, v := range vals {
		if s := stripPunctuation(v); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// truncateString limits s to max bytes, cutting on a rune boundary.
func truncateString(s string, max int) string {
	if len(s) <= max || max <= 0 {
		return s
	}

	for max > 0 && (s[max]&0xc0) == 0x80 {
		max--
	}

	return s[:max]
}
