// Package schemas embeds the JSON Schemas of the editor's wire formats.
package schemas

import _ "embed"

// Action is the schema of a single editor action accepted by the JSON API.
//
//go:embed action.schema.json
var Action []byte

// State is the schema of a serialized form state.
//
//go:embed state.schema.json
var State []byte
