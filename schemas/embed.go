// Package schemas embeds the JSON Schemas for the analyzer's output artifacts.
package schemas

import _ "embed"

// Report is the JSON Schema of a serialized analysis report.
//
//go:embed report.schema.json
var Report string
