package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/vektah/gqlparser/v2/ast"
)

// schemaFilenames expands the globs of the schema option. The result is sorted and has no duplicates.
func schemaFilenames(globs gqlgenconfig.StringList) (gqlgenconfig.StringList, error) {
	var filenames gqlgenconfig.StringList

	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return nil, fmt.Errorf("failed to glob schema filename %s: %w", glob, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("failed to find schema file: %s", glob)
		}

		filenames = append(filenames, matches...)
	}

	slices.Sort(filenames)

	return slices.Compact(filenames), nil
}

func schemaFileSources(filenames gqlgenconfig.StringList) ([]*ast.Source, error) {
	sources := make([]*ast.Source, 0, len(filenames))

	for _, filename := range filenames {
		filename = filepath.ToSlash(filename)

		schemaRaw, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("unable to open schema: %w", err)
		}

		sources = append(sources, &ast.Source{Name: filename, Input: string(schemaRaw)})
	}

	return sources, nil
}
