package codegen

import (
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/iancoleman/strcase"
)

// NameConverter transforms a GraphQL type name into the emitted declaration name.
type NameConverter func(name string) string

// Naming conventions accepted by NewNameConverter.
const (
	NamingKeep       = "keep"
	NamingPascalCase = "pascalCase"
	NamingCamelCase  = "camelCase"
	NamingUpperCase  = "upperCase"
	NamingLowerCase  = "lowerCase"
	NamingGoCase     = "goCase"
)

// KeepName returns name unchanged.
func KeepName(name string) string {
	return name
}

// NewNameConverter returns the converter for convention. Unless transformUnderscore is set,
// every "_" separated segment is converted on its own and the underscores are kept.
func NewNameConverter(convention string, transformUnderscore bool) (NameConverter, error) {
	var convert NameConverter

	switch convention {
	case NamingKeep:
		return KeepName, nil
	case "", NamingPascalCase:
		convert = strcase.ToCamel
	case NamingCamelCase:
		convert = strcase.ToLowerCamel
	case NamingUpperCase:
		convert = strings.ToUpper
	case NamingLowerCase:
		convert = strings.ToLower
	case NamingGoCase:
		convert = templates.ToGo
	default:
		return nil, fmt.Errorf("unknown naming convention %q", convention)
	}

	if transformUnderscore {
		return convert, nil
	}

	return func(name string) string {
		segments := strings.Split(name, "_")
		for i, segment := range segments {
			if segment != "" {
				segments[i] = convert(segment)
			}
		}
		return strings.Join(segments, "_")
	}, nil
}
