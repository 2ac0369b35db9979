// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Schema returns an openapi3.SchemaRef of the [Report] document
// written in the JSON and YAML formats.
func Schema() (*openapi3.SchemaRef, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(Report{}, openapi3.Schemas{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate report schema: %w", err)
	}
	return ref, nil
}

// WriteSchema prints the schema of the [Report] document as indented JSON.
func WriteSchema(w io.Writer) error {
	ref, err := Schema()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ref.Value)
}
