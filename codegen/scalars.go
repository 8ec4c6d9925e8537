package codegen

import "maps"

// ObjectType is used for scalars without a PHP mapping and for names the schema does not define.
const ObjectType = "object"

// DefaultScalars maps GraphQL scalars to PHP types.
var DefaultScalars = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Boolean": "bool",
	"Int":     "int",
	"Float":   "float",
	"Date":    "DateTime",
}

// Scalars returns DefaultScalars merged with overrides. The result is a fresh map.
func Scalars(overrides map[string]string) map[string]string {
	scalars := maps.Clone(DefaultScalars)
	maps.Copy(scalars, overrides)

	return scalars
}

// native value types, as opposed to class references
var valueTypes = map[string]struct{}{
	"bool":    {},
	"byte":    {},
	"sbyte":   {},
	"char":    {},
	"decimal": {},
	"double":  {},
	"float":   {},
	"int":     {},
	"uint":    {},
	"long":    {},
	"ulong":   {},
	"short":   {},
	"ushort":  {},
}

// IsValueType reports whether typeName is a native PHP value type.
func IsValueType(typeName string) bool {
	_, ok := valueTypes[typeName]
	return ok
}
