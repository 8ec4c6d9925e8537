package introspection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Parse decodes an introspection result, either the raw `{"__schema": ...}` object or a
// response wrapped in `{"data": ...}`.
func Parse(data []byte) (*Query, error) {
	var res struct {
		Data *Query `json:"data"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode introspection: %w", err)
	}

	q := res.Data
	if q == nil {
		q = &Query{}
		if err := json.Unmarshal(data, q); err != nil {
			return nil, fmt.Errorf("decode introspection: %w", err)
		}
	}

	if err := Validate(q); err != nil {
		return nil, fmt.Errorf("decode introspection: %w", err)
	}

	return q, nil
}

// Validate reports whether q holds a usable schema.
func Validate(q *Query) error {
	if len(q.Schema.Types) == 0 {
		return errors.New("no types found in __schema")
	}
	return nil
}

// SDL prints the types of q as a schema document.
func SDL(q *Query) (string, error) {
	doc, err := SchemaDocument(q)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)

	return buf.String(), nil
}

// SchemaDocument converts q into definitions in introspection order. Built-in scalars and
// introspection types are left out; they come from the prelude when the document is loaded.
func SchemaDocument(q *Query) (*ast.SchemaDocument, error) {
	doc := &ast.SchemaDocument{}

	for _, t := range q.Schema.Types {
		if t.Name == nil || isBuiltIn(*t.Name) {
			continue
		}

		def, err := definition(t)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", *t.Name, err)
		}
		doc.Definitions = append(doc.Definitions, def)
	}

	return doc, nil
}

func isBuiltIn(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID":
		return true
	}
	return strings.HasPrefix(name, "__")
}

func definition(t *FullType) (*ast.Definition, error) {
	def := &ast.Definition{
		Name:        *t.Name,
		Description: deref(t.Description),
	}

	var err error
	switch t.Kind {
	case TypeKindScalar:
		def.Kind = ast.Scalar
	case TypeKindObject:
		def.Kind = ast.Object
		def.Interfaces = names(t.Interfaces)
		def.Fields, err = fields(t.Fields)
	case TypeKindInterface:
		def.Kind = ast.Interface
		def.Interfaces = names(t.Interfaces)
		def.Fields, err = fields(t.Fields)
	case TypeKindUnion:
		def.Kind = ast.Union
		def.Types = names(t.PossibleTypes)
	case TypeKindEnum:
		def.Kind = ast.Enum
		for _, v := range t.EnumValues {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Name:        v.Name,
				Description: deref(v.Description),
				Directives:  deprecated(v.IsDeprecated, v.DeprecationReason),
			})
		}
	case TypeKindInputObject:
		def.Kind = ast.InputObject
		for _, v := range t.InputFields {
			typ, typErr := typeOf(&v.Type)
			if typErr != nil {
				return nil, fmt.Errorf("input field %s: %w", v.Name, typErr)
			}
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name:         v.Name,
				Description:  deref(v.Description),
				Type:         typ,
				DefaultValue: defaultValue(v.DefaultValue),
				Directives:   deprecated(v.IsDeprecated, v.DeprecationReason),
			})
		}
	default:
		return nil, fmt.Errorf("unknown type kind %q", t.Kind)
	}
	if err != nil {
		return nil, err
	}

	return def, nil
}

func fields(values []*FieldValue) (ast.FieldList, error) {
	list := make(ast.FieldList, 0, len(values))
	for _, f := range values {
		typ, err := typeOf(&f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		field := &ast.FieldDefinition{
			Name:        f.Name,
			Description: deref(f.Description),
			Type:        typ,
			Directives:  deprecated(f.IsDeprecated, f.DeprecationReason),
		}
		for _, arg := range f.Args {
			argType, err := typeOf(&arg.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: argument %s: %w", f.Name, arg.Name, err)
			}
			field.Arguments = append(field.Arguments, &ast.ArgumentDefinition{
				Name:         arg.Name,
				Description:  deref(arg.Description),
				Type:         argType,
				DefaultValue: defaultValue(arg.DefaultValue),
				Directives:   deprecated(arg.IsDeprecated, arg.DeprecationReason),
			})
		}
		list = append(list, field)
	}

	return list, nil
}

func typeOf(ref *TypeRef) (*ast.Type, error) {
	switch ref.Kind {
	case TypeKindNonNull, TypeKindList:
		if ref.OfType == nil {
			return nil, fmt.Errorf("%s type reference without ofType", ref.Kind)
		}
		elem, err := typeOf(ref.OfType)
		if err != nil {
			return nil, err
		}
		if ref.Kind == TypeKindList {
			return &ast.Type{Elem: elem}, nil
		}
		if elem.NonNull {
			return nil, errors.New("NON_NULL type reference wraps another NON_NULL")
		}
		elem.NonNull = true
		return elem, nil
	default:
		if ref.Name == nil || *ref.Name == "" {
			return nil, fmt.Errorf("%s type reference without name", ref.Kind)
		}
		return &ast.Type{NamedType: *ref.Name}, nil
	}
}

// defaultValue keeps the literal as printed by the server. EnumValue is a kind whose
// String() returns Raw unquoted.
func defaultValue(raw *string) *ast.Value {
	if raw == nil {
		return nil
	}
	return &ast.Value{Kind: ast.EnumValue, Raw: *raw}
}

func deprecated(isDeprecated bool, reason *string) ast.DirectiveList {
	if !isDeprecated {
		return nil
	}

	directive := &ast.Directive{Name: "deprecated"}
	if reason != nil {
		directive.Arguments = ast.ArgumentList{
			{Name: "reason", Value: &ast.Value{Kind: ast.StringValue, Raw: *reason}},
		}
	}

	return ast.DirectiveList{directive}
}

func names(refs []*TypeRef) []string {
	if len(refs) == 0 {
		return nil
	}

	list := make([]string, 0, len(refs))
	for _, ref := range refs {
		list = append(list, deref(ref.Name))
	}
	return list
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
