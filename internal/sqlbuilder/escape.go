package sqlbuilder

import "strings"

// PathSeparator joins project names inside a path snapshot.
const PathSeparator = "_"

// EscapeChar is the LIKE escape character used by every pattern.
const EscapeChar = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns a LIKE pattern matching any value containing s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// PrefixPattern returns a LIKE pattern matching any value starting with s.
func PrefixPattern(s string) string {
	return EscapeLike(s) + "%"
}

// RootPrefixPattern matches paths strictly below root. The separator is part
// of the escaped literal, so "study" never matches "studyroom" and a root
// that itself contains "_" cannot leak into sibling paths.
func RootPrefixPattern(root string) string {
	return EscapeLike(root+PathSeparator) + "%"
}
