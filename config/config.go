package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/gqlgo/gqlgenphp/codegen"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultConfigFilenames are searched by FindConfigFile in this order.
var DefaultConfigFilenames = []string{".gqlgenphp.yml", "gqlgenphp.yml", ".gqlgenphp.yaml", "gqlgenphp.yaml"}

// Config represents the config file.
type Config struct {
	// only SchemaFilename is read from the gqlgen section; Sources and Schema are filled by LoadSchema
	GQLGenConfig  *gqlgenconfig.Config `yaml:"gqlgen,omitempty"`
	Introspection *string              `yaml:"introspection,omitempty"`
	Endpoint      *EndpointConfig      `yaml:"endpoint,omitempty"`
	PHP           *PHPConfig           `yaml:"php"`
}

// EndpointConfig are the allowed options for the 'endpoint' config.
type EndpointConfig struct {
	URL     string      `yaml:"url"`
	Headers http.Header `yaml:"headers,omitempty"`
}

const sourceUsage = "Use schema to load SDL files, use introspection to load an introspection result, use endpoint to load from a remote server (using introspection)"

var (
	errMultipleSources = errors.New("only one of 'schema', 'introspection' or 'endpoint' can be specified. " + sourceUsage)
	errNoSource        = errors.New("neither 'schema', 'introspection' nor 'endpoint' specified. " + sourceUsage)
)

// PHPConfig holds the options of the php plugin.
type PHPConfig struct {
	Filename      string `yaml:"filename"`
	NamespaceName string `yaml:"namespaceName,omitempty"`
	ClassName     string `yaml:"className,omitempty"`
	// WrapTypes nests every declaration inside `public class <ClassName>`.
	WrapTypes           bool                         `yaml:"wrapTypes,omitempty"`
	ListType            string                       `yaml:"listType,omitempty"`
	EnumValues          map[string]map[string]string `yaml:"enumValues,omitempty"`
	Scalars             map[string]string            `yaml:"scalars,omitempty"`
	NamingConvention    string                       `yaml:"namingConvention,omitempty"`
	TransformUnderscore bool                         `yaml:"transformUnderscore,omitempty"`
	InputMethodTemplate string                       `yaml:"inputMethodTemplate,omitempty"`
}

const (
	DefaultNamespaceName = "GraphQLCodeGen"
	DefaultClassName     = "Types"
	DefaultListType      = "List"
)

// ApplyDefaults fills unset options.
func (c *PHPConfig) ApplyDefaults() {
	if c.NamespaceName == "" {
		c.NamespaceName = DefaultNamespaceName
	}
	if c.ClassName == "" {
		c.ClassName = DefaultClassName
	}
	if c.ListType == "" {
		c.ListType = DefaultListType
	}
	if c.NamingConvention == "" {
		c.NamingConvention = codegen.NamingPascalCase
	}
	if c.EnumValues == nil {
		c.EnumValues = map[string]map[string]string{}
	}
}

// Check validates the options. The output extension is checked by the plugin.
func (c *PHPConfig) Check() error {
	if c.Filename == "" {
		return errors.New("filename must be specified")
	}

	if _, err := codegen.NewNameConverter(c.NamingConvention, c.TransformUnderscore); err != nil {
		return err
	}

	return nil
}

// LoadConfig loads and parses the gqlgenphp config.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	sources := 0
	for _, specified := range []bool{
		c.GQLGenConfig != nil && c.GQLGenConfig.SchemaFilename != nil,
		c.Introspection != nil,
		c.Endpoint != nil,
	} {
		if specified {
			sources++
		}
	}
	switch {
	case sources > 1:
		return nil, errMultipleSources
	case sources == 0:
		return nil, errNoSource
	}

	if c.Endpoint != nil && c.Endpoint.URL == "" {
		return nil, errors.New("endpoint: url must be specified")
	}

	if c.PHP == nil {
		return nil, errors.New("'php' must be specified")
	}

	if c.GQLGenConfig == nil {
		c.GQLGenConfig = &gqlgenconfig.Config{}
	}

	c.PHP.ApplyDefaults()
	if err := c.PHP.Check(); err != nil {
		return nil, fmt.Errorf("php: %w", err)
	}

	return &c, nil
}

// LoadSchema reads the schema sources and stores the validated schema in GQLGenConfig.
// ctx bounds the introspection request of the endpoint source.
func (c *Config) LoadSchema(ctx context.Context) error {
	var sources []*ast.Source

	switch {
	case c.GQLGenConfig.SchemaFilename != nil:
		schemaFilename, err := schemaFilenames(c.GQLGenConfig.SchemaFilename)
		if err != nil {
			return err
		}
		c.GQLGenConfig.SchemaFilename = schemaFilename

		sources, err = schemaFileSources(schemaFilename)
		if err != nil {
			return err
		}
	case c.Introspection != nil:
		source, err := introspectionSource(*c.Introspection)
		if err != nil {
			return fmt.Errorf("load introspection failed: %w", err)
		}
		sources = []*ast.Source{source}
	case c.Endpoint != nil:
		source, err := endpointSource(ctx, c.Endpoint)
		if err != nil {
			return fmt.Errorf("introspect schema failed: %w", err)
		}
		sources = []*ast.Source{source}
	default:
		return errNoSource
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return fmt.Errorf("load schema failed: %w", err)
	}

	c.GQLGenConfig.Sources = sources
	c.GQLGenConfig.Schema = schema

	return nil
}

// FindConfigFile searches dir and its parents for one of filenames.
func FindConfigFile(dir string, filenames []string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to resolve %s: %w", dir, err)
	}

	for {
		for _, filename := range filenames {
			path := filepath.Join(absDir, filename)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("unable to find config file %v in %s or its parents", filenames, dir)
		}
		absDir = parent
	}
}
