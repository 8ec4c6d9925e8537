package phpgen

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/gqlgo/gqlgenphp/codegen"
	"github.com/gqlgo/gqlgenphp/codegen/declaration"
	"github.com/gqlgo/gqlgenphp/config"

	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultDeprecationReason is used for @deprecated without a reason argument.
const DefaultDeprecationReason = "Field no longer supported"

//go:embed input_object.php.tmpl
var inputObjectTemplate string

// inputMethodData is passed to the input object method template.
type inputMethodData struct {
	Name     string
	Required []string
}

// Visitor turns schema definitions into PHP declarations.
type Visitor struct {
	cfg         *config.PHPConfig
	resolver    *codegen.Resolver
	keywords    codegen.Keywords
	convertName codegen.NameConverter
	inputMethod *template.Template
}

// NewVisitor creates a Visitor for schema. cfg must have its defaults applied.
func NewVisitor(cfg *config.PHPConfig, schema *ast.Schema) (*Visitor, error) {
	convertName, err := codegen.NewNameConverter(cfg.NamingConvention, cfg.TransformUnderscore)
	if err != nil {
		return nil, err
	}

	text := inputObjectTemplate
	if cfg.InputMethodTemplate != "" {
		b, err := os.ReadFile(cfg.InputMethodTemplate)
		if err != nil {
			return nil, fmt.Errorf("unable to read input method template: %w", err)
		}
		text = string(b)
	}

	inputMethod, err := template.New("inputMethod").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse input method template: %w", err)
	}

	return &Visitor{
		cfg:         cfg,
		resolver:    codegen.NewResolver(schema, codegen.Scalars(cfg.Scalars), convertName),
		keywords:    codegen.PHPKeywords(),
		convertName: convertName,
		inputMethod: inputMethod,
	}, nil
}

// Visit returns one declaration per object, interface, input object and enum definition,
// in the order of defs. Other kinds are skipped.
func (v *Visitor) Visit(defs []*ast.Definition) ([]*declaration.Declaration, error) {
	declarations := make([]*declaration.Declaration, 0, len(defs))

	for _, def := range defs {
		var decl *declaration.Declaration

		switch def.Kind {
		case ast.Enum:
			decl = v.EnumTypeDefinition(def)
		case ast.Object:
			decl = v.ObjectTypeDefinition(def)
		case ast.Interface:
			decl = v.InterfaceTypeDefinition(def)
		case ast.InputObject:
			var err error
			decl, err = v.InputObjectTypeDefinition(def)
			if err != nil {
				return nil, fmt.Errorf("input %s: %w", def.Name, err)
			}
		default:
			continue
		}

		declarations = append(declarations, decl)
	}

	return declarations, nil
}

// FileContent renders declarations below the file header.
func (v *Visitor) FileContent(declarations []*declaration.Declaration) string {
	if v.cfg.WrapTypes {
		wrapper := declaration.New().
			Access(declaration.Public).
			AsKind(declaration.Class).
			WithName(v.safeName(v.cfg.ClassName))
		for _, decl := range declarations {
			wrapper.Nest(decl)
		}
		return v.prependFileHeader(wrapper.String())
	}

	rendered := make([]string, 0, len(declarations))
	for _, decl := range declarations {
		rendered = append(rendered, decl.String())
	}

	return v.prependFileHeader(strings.Join(rendered, "\n"))
}

func (v *Visitor) prependFileHeader(content string) string {
	return fmt.Sprintf("<?php\n\nnamespace %s;\n\n%s", v.cfg.NamespaceName, content)
}

// EnumTypeDefinition renders an enum with one case per value.
func (v *Visitor) EnumTypeDefinition(def *ast.Definition) *declaration.Declaration {
	values := make([]string, 0, len(def.EnumValues))
	for _, value := range def.EnumValues {
		header := v.fieldHeader(value.Description, value.Directives)
		values = append(values, declaration.Indent(header+v.enumValue(def.Name, value.Name), 1))
	}

	return declaration.New().
		Access(declaration.Public).
		AsKind(declaration.Enum).
		WithComment(def.Description).
		WithName(v.safeName(v.convertName(def.Name))).
		WithBlock(strings.Join(values, ",\n"))
}

// ObjectTypeDefinition renders an object type as a class implementing its interfaces.
func (v *Visitor) ObjectTypeDefinition(def *ast.Definition) *declaration.Declaration {
	members, _ := v.members(def.Fields, false)

	return declaration.New().
		Access(declaration.Public).
		AsKind(declaration.Class).
		WithComment(def.Description).
		WithName(v.safeName(def.Name)).
		Implements(def.Interfaces).
		WithBlock(strings.Join(members, "\n\n"))
}

// InterfaceTypeDefinition renders an interface with one property per field.
func (v *Visitor) InterfaceTypeDefinition(def *ast.Definition) *declaration.Declaration {
	members, _ := v.members(def.Fields, false)

	return declaration.New().
		Access(declaration.Public).
		AsKind(declaration.Interface).
		WithComment(def.Description).
		WithName(v.safeName(def.Name)).
		WithBlock(strings.Join(members, "\n\n"))
}

// InputObjectTypeDefinition renders an input as a class whose non-null fields with a default
// value are optional, followed by the input object method.
func (v *Visitor) InputObjectTypeDefinition(def *ast.Definition) (*declaration.Declaration, error) {
	name := v.safeName(v.convertName(def.Name))
	members, required := v.members(def.Fields, true)

	var method bytes.Buffer
	if err := v.inputMethod.Execute(&method, inputMethodData{Name: name, Required: required}); err != nil {
		return nil, fmt.Errorf("failed to execute input method template: %w", err)
	}
	members = append(members, declaration.Indent(strings.TrimRight(method.String(), "\n"), 1))

	return declaration.New().
		Access(declaration.Public).
		AsKind(declaration.Class).
		WithComment(def.Description).
		WithName(name).
		WithBlock(strings.Join(members, "\n\n")), nil
}

// members renders one indented property per field and returns the names of required properties.
func (v *Visitor) members(fields ast.FieldList, input bool) ([]string, []string) {
	members := make([]string, 0, len(fields))
	var required []string

	for _, field := range fields {
		// __schema and __type are added to the query root by the validator
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		fieldType := v.resolver.Resolve(field.Type, input && field.DefaultValue != nil)
		fieldName := v.safeName(field.Name)
		if fieldType.Required() {
			required = append(required, fieldName)
		}

		var annotations []string
		if fieldType.IsList() {
			annotations = append(annotations, "@var "+fieldType.CommentString(v.cfg.ListType))
		}
		header := v.fieldHeader(field.Description, field.Directives, annotations...)

		member := fmt.Sprintf("%spublic %s $%s;", header, fieldType.DeclarationString(v.cfg.ListType), fieldName)
		members = append(members, declaration.Indent(member, 1))
	}

	return members, required
}

// fieldHeader renders the doc comment of a member: the description, then a blank line,
// then the @deprecated and any extra annotation lines.
func (v *Visitor) fieldHeader(description string, directives ast.DirectiveList, annotations ...string) string {
	var lines []string
	if deprecation := directives.ForName("deprecated"); deprecation != nil {
		lines = append(lines, "@deprecated "+deprecationReason(deprecation))
	}
	lines = append(lines, annotations...)

	return declaration.Comment(strings.TrimSpace(description+"\n\n"+strings.Join(lines, "\n")), 0)
}

func deprecationReason(directive *ast.Directive) string {
	if reason := directive.Arguments.ForName("reason"); reason != nil && reason.Value != nil {
		switch reason.Value.Kind {
		case ast.StringValue, ast.BlockValue:
			return reason.Value.Raw
		}
	}
	return DefaultDeprecationReason
}

// enumValue returns the configured override of an enum value, or its safe name.
func (v *Visitor) enumValue(enumName, value string) string {
	if override, ok := v.cfg.EnumValues[enumName][value]; ok && override != "" {
		return override
	}
	return v.safeName(value)
}

func (v *Visitor) safeName(name string) string {
	return v.keywords.Safe(name)
}
