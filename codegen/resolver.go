package codegen

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Resolver converts GraphQL type references into FieldTypes.
type Resolver struct {
	schema      *ast.Schema
	scalars     map[string]string
	convertName NameConverter
}

// NewResolver creates a Resolver. scalars is usually built with Scalars, convertName is applied
// to input object and enum names.
func NewResolver(schema *ast.Schema, scalars map[string]string, convertName NameConverter) *Resolver {
	if convertName == nil {
		convertName = KeepName
	}

	return &Resolver{
		schema:      schema,
		scalars:     scalars,
		convertName: convertName,
	}
}

// Resolve returns the FieldType of t. When hasDefaultValue is set the outermost layer
// (the list if any, otherwise the base type) is made optional: callers may omit a non-null
// input that has a default.
func (r *Resolver) Resolve(t *ast.Type, hasDefaultValue bool) FieldType {
	inner := t
	for inner.Elem != nil {
		inner = inner.Elem
	}

	fieldType := FieldType{
		Base: r.baseType(inner.NamedType),
		List: listType(t),
	}
	fieldType.Base.Required = inner.NonNull

	if hasDefaultValue {
		if fieldType.List != nil {
			fieldType.List.Required = false
		} else {
			fieldType.Base.Required = false
		}
	}

	return fieldType
}

func (r *Resolver) baseType(name string) BaseType {
	var def *ast.Definition
	if r.schema != nil {
		def = r.schema.Types[name]
	}

	if def == nil {
		return BaseType{Name: ObjectType}
	}

	switch def.Kind {
	case ast.Scalar:
		if phpType, ok := r.scalars[def.Name]; ok {
			return BaseType{Name: phpType, ValueType: IsValueType(phpType)}
		}
		return BaseType{Name: ObjectType}
	case ast.InputObject:
		return BaseType{Name: r.convertName(def.Name)}
	case ast.Enum:
		return BaseType{Name: r.convertName(def.Name), ValueType: true}
	default:
		return BaseType{Name: def.Name}
	}
}

// listType mirrors the list layers of t, outermost first.
func listType(t *ast.Type) *ListType {
	if t == nil || t.Elem == nil {
		return nil
	}

	return &ListType{
		Required: t.NonNull,
		Inner:    listType(t.Elem),
	}
}
