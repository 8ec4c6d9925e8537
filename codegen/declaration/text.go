package declaration

import (
	"strings"
	"unicode"
)

// IndentUnit is one level of indentation.
const IndentUnit = "    "

// Indent prefixes every non-empty line of s with level indentation units.
func Indent(s string, level int) string {
	if level <= 0 || s == "" {
		return s
	}

	prefix := strings.Repeat(IndentUnit, level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}

// Comment formats text as a /** ... */ doc block terminated by a newline.
// It returns "" when text is blank.
func Comment(text string, level int) string {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "*/", `*\/`)

	src := strings.Split(text, "\n")
	lines := make([]string, 0, len(src)+2)
	lines = append(lines, "/**")
	for _, line := range src {
		lines = append(lines, strings.TrimRight(" * "+line, " "))
	}
	lines = append(lines, " */")

	return Indent(strings.Join(lines, "\n"), level) + "\n"
}
