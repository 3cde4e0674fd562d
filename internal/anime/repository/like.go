package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching name literally as a substring.
// Backslash is the escape character, PostgreSQL's default.
func ContainsPattern(name string) string {
	return "%" + likeEscaper.Replace(name) + "%"
}
