// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ipinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// asPrefix marks the autonomous system number in the org field, e.g. "AS15169 Google LLC".
const asPrefix = "AS"

// orgSeparator splits the AS number from the provider name.
var orgSeparator = regexp.MustCompile(`\s+`)

// Metadata is the ownership and location information of an address.
// Every field may be empty when the lookup service does not know it.
type Metadata struct {
	// Country is the ISO 3166-1 alpha-2 country code.
	Country string `json:"country" yaml:"country"`
	// AS is the autonomous system number without the "AS" prefix.
	AS string `json:"as" yaml:"as"`
	// Provider is the name of the organization operating the address.
	Provider string `json:"provider" yaml:"provider"`
}

// response is the subset of the lookup service answer that is used.
// Both fields are optional.
type response struct {
	Country *string `json:"country"`
	Org     *string `json:"org"`
}

// metadata maps the response to [Metadata].
func (r response) metadata() Metadata {
	var md Metadata
	if r.Country != nil {
		md.Country = *r.Country
	}
	if r.Org != nil {
		md.AS, md.Provider = splitOrg(*r.Org)
	}
	return md
}

// splitOrg splits an org value like "AS15169 Google LLC" into the AS number and the provider.
// Values without the AS prefix are provider names.
func splitOrg(org string) (as, provider string) {
	parts := orgSeparator.Split(org, 2)
	switch {
	case len(parts) == 2 && strings.HasPrefix(parts[0], asPrefix):
		return strings.TrimPrefix(parts[0], asPrefix), parts[1]
	case len(parts) == 1 && strings.HasPrefix(parts[0], asPrefix):
		return strings.TrimPrefix(parts[0], asPrefix), ""
	default:
		return "", org
	}
}

// parseResponse decodes a lookup service answer, which must be a JSON object.
func parseResponse(body []byte) (Metadata, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Metadata{}, ErrMalformedResponse
	}

	var r response
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return r.metadata(), nil
}
