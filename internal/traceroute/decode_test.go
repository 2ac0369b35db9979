// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/hoptrace/test"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		name    string
		want    encoding.Encoding
		wantErr bool
	}{
		{name: "", want: encoding.Nop},
		{name: "UTF-8", want: encoding.Nop},
		{name: "utf8", want: encoding.Nop},
		{name: "cp866", want: charmap.CodePage866},
		{name: "CP866", want: charmap.CodePage866},
		{name: "866", want: charmap.CodePage866},
		{name: "ibm866", want: charmap.CodePage866},
		{name: "cp437", want: charmap.CodePage437},
		{name: "windows-1251", want: charmap.Windows1251},
		{name: "klingon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lookupEncoding(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDecoder(t *testing.T) {
	t.Run("cp866 is decoded", func(t *testing.T) {
		r, err := newDecoder(bytes.NewReader(test.EncodeCP866(t, test.TracertRussian)), "cp866")
		require.NoError(t, err)

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, test.TracertRussian, string(got))
	})

	t.Run("utf-8 is passed through", func(t *testing.T) {
		src := bytes.NewReader([]byte(test.TracerouteUnix))
		r, err := newDecoder(src, "utf-8")
		require.NoError(t, err)
		assert.Same(t, src, r)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := newDecoder(bytes.NewReader(nil), "klingon")
		assert.ErrorIs(t, err, ErrUnknownEncoding)
	})
}
