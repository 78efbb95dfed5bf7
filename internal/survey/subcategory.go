// SPDX-License-Identifier: Apache-2.0

package survey

import "strings"

// CleanSubcategory strips the parenthetical example text from a subcategory
// name, e.g. "AWS (examples: EC2, S3)" -> "AWS", and trims surrounding
// whitespace. Cleaning is idempotent.
func CleanSubcategory(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// SplitSubcategories splits a semicolon-delimited free-text answer into a
// list of cleaned subcategory names. Empty fragments are dropped; duplicates
// are preserved. An empty input yields a nil list.
func SplitSubcategories(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, frag := range strings.Split(s, ";") {
		if frag == "" {
			continue
		}
		out = append(out, CleanSubcategory(frag))
	}
	return out
}
