package projectname

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	camelCaseBoundaryReplacementConstant = "$1 $2"
	wordSeparatorConstant                = " "
)

var camelCaseBoundaryPattern = regexp.MustCompile(`([a-z])([A-Z])`)

var delimiterReplacer = strings.NewReplacer("_", wordSeparatorConstant, "-", wordSeparatorConstant)

// FormatTitle converts an identifier written in camel, snake or kebab case
// into a title with every word capitalized, e.g. "my_coolProject" becomes
// "My Cool Project". Runs of capitals are not split: "HTTPServer" becomes
// "Httpserver".
func FormatTitle(identifier string) string {
	spacedIdentifier := camelCaseBoundaryPattern.ReplaceAllString(identifier, camelCaseBoundaryReplacementConstant)
	spacedIdentifier = delimiterReplacer.Replace(spacedIdentifier)

	words := strings.Fields(spacedIdentifier)
	for wordIndex, word := range words {
		words[wordIndex] = capitalizeWord(word)
	}
	return strings.Join(words, wordSeparatorConstant)
}

// capitalizeWord title-cases the first rune and lower-cases the remainder.
func capitalizeWord(word string) string {
	firstRune, firstRuneWidth := utf8.DecodeRuneInString(word)
	if firstRune == utf8.RuneError && firstRuneWidth <= 1 {
		return word
	}
	return string(unicode.ToTitle(firstRune)) + cases.Lower(language.Und).String(word[firstRuneWidth:])
}
