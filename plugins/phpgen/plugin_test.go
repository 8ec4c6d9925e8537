package phpgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/gqlgo/gqlgenphp/config"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func loadSchema(t *testing.T, inputs ...string) (*ast.Schema, []*ast.Source) {
	t.Helper()

	sources := make([]*ast.Source, 0, len(inputs))
	for i, input := range inputs {
		sources = append(sources, &ast.Source{Name: filepath.Join("schema", string(rune('a'+i))+".graphql"), Input: input})
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	return schema, sources
}

func defaultConfig() *config.PHPConfig {
	cfg := &config.PHPConfig{Filename: "Types.php"}
	cfg.ApplyDefaults()
	return cfg
}

func TestPlugin_Generate_Golden(t *testing.T) {
	t.Parallel()

	b, err := os.ReadFile("testdata/schema/schema.graphql")
	require.NoError(t, err)
	schema, sources := loadSchema(t, string(b))

	content, count, err := New(defaultConfig(), nil).Generate(schema, sources)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "schema", []byte(content))
}

func TestPlugin_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "拡張子が.phpなら成功", filename: "gen/Types.php"},
		{name: "拡張子が.phpでなければエラー", filename: "gen/Types.cs", wantErr: true},
		{name: "拡張子がなければエラー", filename: "gen/Types", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.Filename = tt.filename

			err := New(cfg, nil).Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidExtension)
				assert.Contains(t, err.Error(), tt.filename)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPlugin_MutateConfig(t *testing.T) {
	t.Parallel()

	schema, sources := loadSchema(t, "type Foo { id: ID! }")

	cfg := defaultConfig()
	cfg.Filename = filepath.Join(t.TempDir(), "gen", "Types.php")

	core, logs := observer.New(zap.InfoLevel)
	p := New(cfg, zap.New(core))
	assert.Equal(t, "php", p.Name())

	err := p.MutateConfig(&gqlgenconfig.Config{Schema: schema, Sources: sources})
	require.NoError(t, err)

	got, err := os.ReadFile(cfg.Filename)
	require.NoError(t, err)
	assert.Equal(t, "<?php\n\nnamespace GraphQLCodeGen;\n\npublic class Foo {\n    public string $id;\n}\n", string(got))

	entries := logs.FilterMessage("generated php types").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "php", entries[0].LoggerName)
	assert.Equal(t, int64(1), entries[0].ContextMap()["declarations"])
}

func TestPlugin_MutateConfig_Errors(t *testing.T) {
	t.Parallel()

	t.Run("スキーマが読み込まれていない場合はエラー", func(t *testing.T) {
		t.Parallel()

		err := New(defaultConfig(), nil).MutateConfig(&gqlgenconfig.Config{})
		require.EqualError(t, err, "schema is not loaded")
	})

	t.Run("拡張子が不正な場合はファイルを書き込まない", func(t *testing.T) {
		t.Parallel()

		schema, sources := loadSchema(t, "type Foo { id: ID! }")
		cfg := defaultConfig()
		cfg.Filename = filepath.Join(t.TempDir(), "Types.cs")

		err := New(cfg, nil).MutateConfig(&gqlgenconfig.Config{Schema: schema, Sources: sources})
		require.ErrorIs(t, err, ErrInvalidExtension)
		assert.NoFileExists(t, cfg.Filename)
	})
}

func TestDefinitions(t *testing.T) {
	t.Parallel()

	schema, sources := loadSchema(t,
		"type B { id: ID }\ntype A { id: ID }\nscalar Date",
		"enum Z { X }\ninput Y { z: Z }",
	)

	names := func(defs []*ast.Definition) []string {
		list := make([]string, 0, len(defs))
		for _, def := range defs {
			list = append(list, def.Name)
		}
		return list
	}

	t.Run("ソースの順序と出現位置で並ぶ", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"B", "A", "Date", "Z", "Y"}, names(Definitions(schema, sources)))
	})

	t.Run("sourcesの順序が優先される", func(t *testing.T) {
		t.Parallel()

		reversed := []*ast.Source{sources[1], sources[0]}
		assert.Equal(t, []string{"Z", "Y", "B", "A", "Date"}, names(Definitions(schema, reversed)))
	})
}
