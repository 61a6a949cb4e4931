// Package openapi embeds the OpenAPI document of the inventory API and the
// page that renders it.
package openapi

import _ "embed"

// YAML is served at /openapi.yaml.
//
//go:embed openapi.yaml
var YAML []byte

// DocsHTML is served at /docs.
//
//go:embed docs.html
var DocsHTML []byte
