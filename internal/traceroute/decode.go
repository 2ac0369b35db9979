// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// legacyCodePages are the OEM code pages used by the Windows console.
// Neither the WHATWG nor the IANA index knows their short names.
var legacyCodePages = map[string]encoding.Encoding{
	"cp437": charmap.CodePage437,
	"cp850": charmap.CodePage850,
	"cp852": charmap.CodePage852,
	"cp855": charmap.CodePage855,
	"cp858": charmap.CodePage858,
	"cp860": charmap.CodePage860,
	"cp862": charmap.CodePage862,
	"cp863": charmap.CodePage863,
	"cp865": charmap.CodePage865,
	"cp866": charmap.CodePage866,
}

// lookupEncoding returns the encoding registered under name.
// An empty name and UTF-8 return [encoding.Nop].
func lookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return encoding.Nop, nil
	}

	if enc, ok := legacyCodePages[key]; ok {
		return enc, nil
	}
	if enc, ok := legacyCodePages["cp"+key]; ok {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// newDecoder wraps r so that reads return UTF-8 text decoded from the named encoding.
func newDecoder(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == encoding.Nop {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
