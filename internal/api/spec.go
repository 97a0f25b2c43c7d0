// Package api defines the HTTP contract of the ledger: the embedded OpenAPI
// document, request and response bodies, and the server interface.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPISpec []byte

var loadSwagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
})

// GetSwagger returns the parsed OpenAPI document. The document is shared and
// must not be modified.
func GetSwagger() (*openapi3.T, error) {
	return loadSwagger()
}
