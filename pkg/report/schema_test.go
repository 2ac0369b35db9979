// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	ref, err := Schema()
	require.NoError(t, err)
	require.NotNil(t, ref.Value)

	props := ref.Value.Properties
	assert.Contains(t, props, "target")
	assert.Contains(t, props, "address")
	require.Contains(t, props, "hops")

	items := props["hops"].Value.Items
	require.NotNil(t, items)
	for _, field := range []string{"index", "ip", "as", "country", "provider"} {
		assert.Contains(t, items.Value.Properties, field)
	}
}

func TestWriteSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, doc, "properties")
}

func TestSchema_ValidatesReports(t *testing.T) {
	ref, err := Schema()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatJSON))
	var doc any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.NoError(t, ref.Value.VisitJSON(doc))

	invalid := map[string]any{"target": "dns.google", "address": "8.8.8.8", "hops": "none"}
	assert.Error(t, ref.Value.VisitJSON(invalid))
}
