package codegen

// Keywords is a set of reserved identifiers of the target language.
type Keywords map[string]struct{}

// PHPKeywords returns the reserved words that cannot be emitted verbatim as PHP identifiers.
func PHPKeywords() Keywords {
	words := []string{
		"abstract", "and", "array", "as", "break", "callable", "case", "catch", "class", "clone",
		"const", "continue", "declare", "default", "do", "echo", "else", "elseif", "empty",
		"enddeclare", "endfor", "endforeach", "endif", "endswitch", "endwhile", "enum", "eval",
		"exit", "extends", "final", "finally", "fn", "for", "foreach", "function", "global",
		"goto", "if", "implements", "include", "include_once", "instanceof", "insteadof",
		"interface", "isset", "list", "match", "namespace", "new", "or", "print", "private",
		"protected", "public", "readonly", "require", "require_once", "return", "static",
		"switch", "throw", "trait", "try", "unset", "use", "var", "while", "xor", "yield",
	}

	keywords := make(Keywords, len(words))
	for _, w := range words {
		keywords[w] = struct{}{}
	}

	return keywords
}

// Safe prefixes name with "@" when it collides with a reserved word.
// No case conversion is applied.
func (k Keywords) Safe(name string) string {
	if _, ok := k[name]; ok {
		return "@" + name
	}
	return name
}
