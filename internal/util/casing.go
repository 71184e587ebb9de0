package util

import (
	"go/token"
	"strings"
	"unicode"
)

// commonInitialisms are upper-cased as a whole when they form a word,
// following the Go naming convention ("id" -> "ID", "bmi" -> "BMI" is not in
// the list and stays "Bmi").
var commonInitialisms = map[string]bool{
	"ID": true, "URL": true, "HTTP": true, "JSON": true, "CSV": true,
	"API": true, "UID": true, "UUID": true, "SQL": true, "XML": true,
}

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms properly (e.g., "HTTPSConnection" -> "https_connection")
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == ' ' || r == '-' {
			result.WriteRune('_')
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			// No underscore inside an acronym unless the next char starts a new word
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevSep := runes[i-1] == '_' || runes[i-1] == ' ' || runes[i-1] == '-'

			if !prevSep && (!prevUpper || nextLower) {
				result.WriteRune('_')
			}
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// ToPascalCase converts snake_case, kebab-case or space separated words to an
// exported Go identifier. Characters that cannot appear in an identifier act as
// word separators. A leading digit gets an "X" prefix.
//
//	sepal_length_in_cm -> SepalLengthInCm
//	record-id          -> RecordID
//	2nd_reading        -> X2ndReading
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	for _, part := range parts {
		upper := strings.ToUpper(part)
		if commonInitialisms[upper] {
			result.WriteString(upper)
			continue
		}
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	out := result.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "X" + out
	}
	return out
}

// IsExportedIdentifier reports whether s can be used as an exported Go name.
func IsExportedIdentifier(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

// IsPackageName reports whether s is a conventional Go package name:
// a lowercase identifier that is not a keyword.
func IsPackageName(s string) bool {
	return token.IsIdentifier(s) && s == strings.ToLower(s)
}
