package codegen

import "fmt"

// BaseType is the innermost, non-list type of a field.
type BaseType struct {
	Name string
	// Required is true when the named type itself is non-null.
	Required bool
	// ValueType is true for native value types and enums.
	ValueType bool
}

// ListType is one [...] layer. Inner is nil at the innermost list.
type ListType struct {
	Required bool
	Inner    *ListType
}

// FieldType describes the resolved PHP type of a field or argument.
// Base is always set, List only when the GraphQL type has at least one list wrapper.
type FieldType struct {
	Base BaseType
	List *ListType
}

// IsList reports whether the field is wrapped in at least one list.
func (f FieldType) IsList() bool {
	return f.List != nil
}

// Depth returns the number of list layers.
func (f FieldType) Depth() int {
	depth := 0
	for l := f.List; l != nil; l = l.Inner {
		depth++
	}
	return depth
}

// Required reports whether the outermost layer is required.
func (f FieldType) Required() bool {
	if f.List != nil {
		return f.List.Required
	}
	return f.Base.Required
}

// DeclarationString renders the type for a property declaration.
// Lists are rendered as the bare collection type.
func (f FieldType) DeclarationString(listType string) string {
	return f.render(f.List, listType, false)
}

// CommentString renders the type for a doc comment, e.g. List<List<int>|null>|null.
func (f FieldType) CommentString(listType string) string {
	return f.render(f.List, listType, true)
}

func (f FieldType) render(list *ListType, listType string, forComment bool) string {
	if f.Base.Name == "" {
		panic(fmt.Sprintf("unexpected field type without base type: %+v", f))
	}

	if list != nil {
		typeName := listType
		if forComment {
			typeName = fmt.Sprintf("%s<%s>", listType, f.render(list.Inner, listType, true))
		}
		return applyNullable(typeName, list.Required, forComment)
	}

	return applyNullable(f.Base.Name, f.Base.Required, forComment)
}

// applyNullable marks a non-required type. Doc comments use a "|null" union,
// declarations use the "?" sigil.
func applyNullable(typeName string, required, forComment bool) string {
	switch {
	case required:
		return typeName
	case forComment:
		return typeName + "|null"
	default:
		return "?" + typeName
	}
}
