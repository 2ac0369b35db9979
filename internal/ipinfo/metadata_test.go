// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ipinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Metadata
		wantErr bool
	}{
		{
			name: "country and org with AS number",
			body: `{"country":"US","org":"AS15169 Google LLC"}`,
			want: Metadata{Country: "US", AS: "15169", Provider: "Google LLC"},
		},
		{
			name: "org with AS number only",
			body: `{"org":"AS15169"}`,
			want: Metadata{AS: "15169"},
		},
		{
			name: "org without AS number",
			body: `{"org":"Some ISP"}`,
			want: Metadata{Provider: "Some ISP"},
		},
		{
			name: "single word org without AS number",
			body: `{"org":"Rostelecom"}`,
			want: Metadata{Provider: "Rostelecom"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: Metadata{},
		},
		{
			name: "country only",
			body: `{"ip":"8.8.8.8","country":"DE"}`,
			want: Metadata{Country: "DE"},
		},
		{
			name: "bogon address",
			body: `{"ip":"10.0.0.1","bogon":true}`,
			want: Metadata{},
		},
		{
			name: "provider keeps inner whitespace",
			body: `{"org":"AS3320 Deutsche  Telekom AG"}`,
			want: Metadata{AS: "3320", Provider: "Deutsche  Telekom AG"},
		},
		{
			name: "AS number separated by a tab",
			body: "{\"org\":\"AS12389\\tRostelecom\"}",
			want: Metadata{AS: "12389", Provider: "Rostelecom"},
		},
		{
			name: "null fields count as absent",
			body: `{"country":null,"org":null}`,
			want: Metadata{},
		},
		{
			name:    "not json",
			body:    `<html>rate limited</html>`,
			wantErr: true,
		},
		{
			name:    "json array",
			body:    `["US"]`,
			wantErr: true,
		},
		{
			name:    "json null",
			body:    `null`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
		{
			name:    "wrong field type",
			body:    `{"country":42}`,
			wantErr: true,
		},
		{
			name:    "truncated object",
			body:    `{"country":"US"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitOrg(t *testing.T) {
	tests := []struct {
		org          string
		wantAS       string
		wantProvider string
	}{
		{org: "AS15169 Google LLC", wantAS: "15169", wantProvider: "Google LLC"},
		{org: "AS15169", wantAS: "15169"},
		{org: "Some ISP", wantProvider: "Some ISP"},
		{org: "", wantProvider: ""},
		{org: "as15169 lowercase", wantProvider: "as15169 lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.org, func(t *testing.T) {
			as, provider := splitOrg(tt.org)
			assert.Equal(t, tt.wantAS, as)
			assert.Equal(t, tt.wantProvider, provider)
		})
	}
}
