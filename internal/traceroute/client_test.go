// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/hoptrace/test"
)

// fakeProcess is a process serving canned output.
type fakeProcess struct {
	out    io.Reader
	closed int
}

func (p *fakeProcess) Output() io.Reader { return p.out }

func (p *fakeProcess) Close() error {
	p.closed++
	return nil
}

// failingReader returns its content, then err.
type failingReader struct {
	r   io.Reader
	err error
}

func (f *failingReader) Read(b []byte) (int, error) {
	n, err := f.r.Read(b)
	if errors.Is(err, io.EOF) {
		return n, f.err
	}
	return n, err
}

type startCall struct {
	name string
	args []string
}

func newFakeClient(proc *fakeProcess, startErr error, calls *[]startCall) *genericClient {
	return &genericClient{
		start: func(_ context.Context, name string, args ...string) (process, error) {
			*calls = append(*calls, startCall{name: name, args: args})
			if startErr != nil {
				return nil, startErr
			}
			return proc, nil
		},
	}
}

func collect(seq func(func(Hop, error) bool)) (hops []Hop, err error) {
	for hop, hErr := range seq {
		if hErr != nil {
			return hops, hErr
		}
		hops = append(hops, hop)
	}
	return hops, nil
}

func TestGenericClient_Run(t *testing.T) {
	unixOpts := defaultOptionsFor("linux")
	windowsOpts := defaultOptionsFor("windows")
	startErr := errors.New("executable file not found")
	readErr := errors.New("pipe broken")

	tests := []struct {
		name      string
		target    Target
		opts      *Options
		output    io.Reader
		startErr  error
		want      []Hop
		wantErr   error
		wantStart *startCall
	}{
		{
			name:   "traceroute output",
			target: Target{Address: "8.8.8.8"},
			opts:   &unixOpts,
			output: strings.NewReader(test.TracerouteUnix),
			want: []Hop{
				{Index: 1, IP: "192.168.1.1"},
				{Index: 2, IP: "10.20.0.1"},
				{Index: 3, IP: "172.16.4.9"},
			},
			wantStart: &startCall{name: "traceroute", args: []string{"-n", "8.8.8.8"}},
		},
		{
			name:   "cp866 tracert output",
			target: Target{Address: "8.8.8.8"},
			opts:   &windowsOpts,
			output: bytes.NewReader(test.EncodeCP866(t, test.TracertRussian)),
			want: []Hop{
				{Index: 1, IP: "192.168.0.1"},
				{Index: 2, IP: "95.167.0.1"},
			},
			wantStart: &startCall{name: "tracert", args: []string{"-d", "8.8.8.8"}},
		},
		{
			name:      "start failure",
			target:    Target{Address: "8.8.8.8"},
			opts:      &unixOpts,
			startErr:  startErr,
			wantErr:   startErr,
			wantStart: &startCall{name: "traceroute", args: []string{"-n", "8.8.8.8"}},
		},
		{
			name:   "read failure after hops",
			target: Target{Address: "8.8.8.8"},
			opts:   &unixOpts,
			output: &failingReader{r: strings.NewReader("to 8.8.8.8\n 1  10.0.0.1\n"), err: readErr},
			want: []Hop{
				{Index: 1, IP: "10.0.0.1"},
			},
			wantErr:   readErr,
			wantStart: &startCall{name: "traceroute", args: []string{"-n", "8.8.8.8"}},
		},
		{
			name:    "invalid target",
			target:  Target{Address: "dns.google"},
			opts:    &unixOpts,
			wantErr: errors.New("invalid target"),
		},
		{
			name:    "invalid options",
			target:  Target{Address: "8.8.8.8"},
			opts:    &Options{Binary: "", TimeoutMarkers: 3},
			wantErr: ErrEmptyBinary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []startCall
			proc := &fakeProcess{out: tt.output}
			c := newFakeClient(proc, tt.startErr, &calls)

			got, err := collect(c.Run(t.Context(), tt.target, tt.opts))

			assert.Equal(t, tt.want, got)
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(err, tt.wantErr):
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}

			if tt.wantStart == nil {
				assert.Empty(t, calls, "process should not be started")
				return
			}
			require.Len(t, calls, 1)
			assert.Equal(t, *tt.wantStart, calls[0])
			if tt.startErr == nil {
				assert.Equal(t, 1, proc.closed, "process should be closed exactly once")
			}
		})
	}
}

func TestGenericClient_Run_EarlyStop(t *testing.T) {
	var calls []startCall
	proc := &fakeProcess{out: strings.NewReader(test.TracerouteUnix)}
	c := newFakeClient(proc, nil, &calls)
	opts := defaultOptionsFor("linux")

	for hop, err := range c.Run(t.Context(), Target{Address: "8.8.8.8"}, &opts) {
		require.NoError(t, err)
		assert.Equal(t, Hop{Index: 1, IP: "192.168.1.1"}, hop)
		break
	}

	assert.Equal(t, 1, proc.closed, "process should be closed when the consumer stops")
}

func TestGenericClient_Run_Canceled(t *testing.T) {
	var calls []startCall
	proc := &fakeProcess{out: strings.NewReader("")}
	c := newFakeClient(proc, nil, &calls)
	opts := defaultOptionsFor("linux")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := collect(c.Run(ctx, Target{Address: "8.8.8.8"}, &opts))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, proc.closed)
}

func TestGenericClient_Run_Restartable(t *testing.T) {
	var calls []startCall
	c := &genericClient{
		start: func(_ context.Context, name string, args ...string) (process, error) {
			calls = append(calls, startCall{name: name, args: args})
			return &fakeProcess{out: strings.NewReader(test.TracertWindows)}, nil
		},
	}
	opts := defaultOptionsFor("windows")
	opts.Encoding = "utf-8"
	seq := c.Run(t.Context(), Target{Address: "8.8.8.8"}, &opts)

	first, err := collect(seq)
	require.NoError(t, err)
	second, err := collect(seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, len(test.TracertWindowsHops))
	assert.Len(t, calls, 2, "every iteration should run its own trace")
}

func TestGenericClient_Run_NilOptions(t *testing.T) {
	var calls []startCall
	proc := &fakeProcess{out: strings.NewReader("")}
	c := newFakeClient(proc, nil, &calls)

	_, err := collect(c.Run(t.Context(), Target{Address: "8.8.8.8"}, nil))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, DefaultOptions().Binary, calls[0].name)
}
