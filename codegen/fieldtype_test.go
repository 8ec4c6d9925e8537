package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldType_Strings(t *testing.T) {
	t.Parallel()

	type want struct {
		declaration string
		comment     string
	}

	tests := []struct {
		name      string
		fieldType FieldType
		listType  string
		want      want
	}{
		{
			name:      "requiredの値型",
			fieldType: FieldType{Base: BaseType{Name: "int", Required: true, ValueType: true}},
			want:      want{declaration: "int", comment: "int"},
		},
		{
			name:      "optionalの値型には?が付く",
			fieldType: FieldType{Base: BaseType{Name: "int", ValueType: true}},
			want:      want{declaration: "?int", comment: "int|null"},
		},
		{
			name:      "optionalの参照型にも?が付く",
			fieldType: FieldType{Base: BaseType{Name: "string"}},
			want:      want{declaration: "?string", comment: "string|null"},
		},
		{
			name:      "optionalのオブジェクト型にも?が付く",
			fieldType: FieldType{Base: BaseType{Name: "Complex"}},
			want:      want{declaration: "?Complex", comment: "Complex|null"},
		},
		{
			name: "requiredのリストは型名だけ",
			fieldType: FieldType{
				Base: BaseType{Name: "int", Required: true, ValueType: true},
				List: &ListType{Required: true},
			},
			listType: "Set",
			want:     want{declaration: "Set", comment: "Set<int>"},
		},
		{
			name: "optionalのリスト",
			fieldType: FieldType{
				Base: BaseType{Name: "int", ValueType: true},
				List: &ListType{},
			},
			listType: "List",
			want:     want{declaration: "?List", comment: "List<int|null>|null"},
		},
		{
			name: "ネストしたリストはコメントでだけ展開される",
			fieldType: FieldType{
				Base: BaseType{Name: "Complex"},
				List: &ListType{Required: true, Inner: &ListType{}},
			},
			listType: "IEnumerable",
			want:     want{declaration: "IEnumerable", comment: "IEnumerable<IEnumerable<Complex|null>|null>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := want{
				declaration: tt.fieldType.DeclarationString(tt.listType),
				comment:     tt.fieldType.CommentString(tt.listType),
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(want{})); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestFieldType_ListDepth(t *testing.T) {
	t.Parallel()

	for depth := 0; depth <= 4; depth++ {
		fieldType := FieldType{Base: BaseType{Name: "int", Required: true, ValueType: true}}
		for range depth {
			fieldType.List = &ListType{Required: true, Inner: fieldType.List}
		}

		if got := fieldType.Depth(); got != depth {
			t.Errorf("Depth() = %d, want %d", got, depth)
		}

		if got := strings.Count(fieldType.CommentString("Coll"), "Coll<"); got != depth {
			t.Errorf("depth %d: comment has %d parametrized collections", depth, got)
		}

		wantDecl := "int"
		if depth > 0 {
			wantDecl = "Coll"
		}
		if got := fieldType.DeclarationString("Coll"); got != wantDecl {
			t.Errorf("depth %d: DeclarationString() = %q, want %q", depth, got, wantDecl)
		}
	}
}

func TestFieldType_Required(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fieldType FieldType
		want      bool
	}{
		{name: "base", fieldType: FieldType{Base: BaseType{Name: "int", Required: true}}, want: true},
		{name: "list wins over base", fieldType: FieldType{Base: BaseType{Name: "int", Required: true}, List: &ListType{}}, want: false},
		{name: "required list", fieldType: FieldType{Base: BaseType{Name: "int"}, List: &ListType{Required: true}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fieldType.Required(); got != tt.want {
				t.Errorf("Required() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldType_PanicsWithoutBaseType(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	_ = FieldType{List: &ListType{}}.DeclarationString("List")
}
