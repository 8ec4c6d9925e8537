// Package phpgen generates PHP classes, interfaces and enums from a GraphQL schema.
//
// Every object, interface, input object and enum definition becomes one declaration in a single
// output file, in the order the definitions appear in the schema sources.
package phpgen

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"
	"github.com/99designs/gqlgen/plugin"

	"github.com/gqlgo/gqlgenphp/config"

	"github.com/vektah/gqlparser/v2/ast"
)

// Extension is the only accepted output file extension.
const Extension = ".php"

// ErrInvalidExtension is returned when the output file is not a PHP file.
var ErrInvalidExtension = errors.New(`plugin "php" requires extension to be ".php"`)

var _ plugin.ConfigMutator = &Plugin{}

// Plugin writes the PHP file configured by config.PHPConfig.
type Plugin struct {
	cfg    *config.PHPConfig
	logger *zap.Logger
}

// New creates the php plugin. A nil logger discards logs.
func New(cfg *config.PHPConfig, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Plugin{
		cfg:    cfg,
		logger: logger.Named("php"),
	}
}

// Name returns the name of this plugin for gqlgen's plugin system.
func (p *Plugin) Name() string {
	return "php"
}

// Validate checks the output file name.
func (p *Plugin) Validate() error {
	if filepath.Ext(p.cfg.Filename) != Extension {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, p.cfg.Filename)
	}
	return nil
}

// MutateConfig implements gqlgen's ConfigMutator. It generates from cfg.Schema and writes the file.
func (p *Plugin) MutateConfig(cfg *gqlgenconfig.Config) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if cfg.Schema == nil {
		return errors.New("schema is not loaded")
	}

	content, count, err := p.Generate(cfg.Schema, cfg.Sources)
	if err != nil {
		return err
	}

	if err := writeFile(p.cfg.Filename, content); err != nil {
		return err
	}

	p.logger.Info("generated php types",
		zap.String("file", p.cfg.Filename),
		zap.Int("declarations", count),
	)

	return nil
}

// Generate renders the file content for schema and returns it with the number of declarations.
// sources decides the order of definitions coming from different files.
func (p *Plugin) Generate(schema *ast.Schema, sources []*ast.Source) (string, int, error) {
	visitor, err := NewVisitor(p.cfg, schema)
	if err != nil {
		return "", 0, err
	}

	defs := Definitions(schema, sources)
	p.logger.Debug("walking schema", zap.Int("definitions", len(defs)))

	declarations, err := visitor.Visit(defs)
	if err != nil {
		return "", 0, err
	}

	return visitor.FileContent(declarations), len(declarations), nil
}

// Definitions returns the user defined types of schema in document order: by position of
// their source in sources, then by offset. Built-in and introspection types are left out.
func Definitions(schema *ast.Schema, sources []*ast.Source) []*ast.Definition {
	sourceIndex := make(map[*ast.Source]int, len(sources))
	for i, source := range sources {
		sourceIndex[source] = i
	}

	defs := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		if def.BuiltIn || strings.HasPrefix(def.Name, "__") {
			continue
		}
		defs = append(defs, def)
	}

	position := func(def *ast.Definition) (int, int) {
		if def.Position == nil {
			return len(sources), 0
		}
		index, ok := sourceIndex[def.Position.Src]
		if !ok {
			index = len(sources)
		}
		return index, def.Position.Start
	}

	slices.SortFunc(defs, func(a, b *ast.Definition) int {
		aSrc, aStart := position(a)
		bSrc, bStart := position(b)
		return cmp.Or(
			cmp.Compare(aSrc, bSrc),
			cmp.Compare(aStart, bStart),
			strings.Compare(a.Name, b.Name),
		)
	})

	return defs
}

func writeFile(filename, content string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return nil
}
