// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ipinfo

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is returned when the lookup service does not answer with a JSON object.
var ErrMalformedResponse = errors.New("malformed lookup response")

// ErrUnexpectedStatus is returned when the lookup service answers with a status other than 200.
type ErrUnexpectedStatus struct {
	StatusCode int
}

func (e ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected lookup response status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
