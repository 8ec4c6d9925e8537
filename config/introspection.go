package config

import (
	"context"
	"fmt"
	"os"

	"github.com/gqlgo/gqlgenphp/client"
	"github.com/gqlgo/gqlgenphp/introspection"

	"github.com/vektah/gqlparser/v2/ast"
)

// introspectionSource converts an introspection result file into an SDL source.
func introspectionSource(filename string) (*ast.Source, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read introspection: %w", err)
	}

	res, err := introspection.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse introspection %s: %w", filename, err)
	}

	sdl, err := introspection.SDL(res)
	if err != nil {
		return nil, fmt.Errorf("unable to convert introspection %s: %w", filename, err)
	}

	return &ast.Source{Name: filename, Input: sdl}, nil
}

// endpointSource runs the introspection query against endpoint and converts the result into an SDL source.
func endpointSource(ctx context.Context, endpoint *EndpointConfig) (*ast.Source, error) {
	gqlClient := client.NewClient(endpoint.URL, client.WithHTTPHeader(endpoint.Headers))

	var res introspection.Query
	if err := gqlClient.Post(ctx, "IntrospectionQuery", introspection.Introspection, nil, &res); err != nil {
		return nil, fmt.Errorf("introspection query failed: %w", err)
	}

	if err := introspection.Validate(&res); err != nil {
		return nil, fmt.Errorf("invalid introspection result: %w", err)
	}

	sdl, err := introspection.SDL(&res)
	if err != nil {
		return nil, fmt.Errorf("invalid introspection result: %w", err)
	}

	return &ast.Source{Name: endpoint.URL, Input: sdl}, nil
}
