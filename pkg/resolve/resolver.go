// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/telekom/hoptrace/internal/logger"
	"golang.org/x/net/idna"
)

//go:generate go tool moq -out resolver_moq.go . Resolver
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// NewResolver returns the system resolver.
func NewResolver() Resolver {
	return net.DefaultResolver
}

// Resolve returns the IPv4 address to trace for host.
// IPv4 literals are returned unchanged. Host names are converted to their
// ASCII form before they are looked up, the first IPv4 address wins.
func Resolve(ctx context.Context, r Resolver, host string) (string, error) {
	log := logger.FromContext(ctx).With("host", host)
	host = strings.TrimSpace(host)
	if host == "" {
		return "", ErrEmptyHost
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if !addr.Is4() {
			return "", fmt.Errorf("%w: %s", ErrNoIPv4Address, host)
		}
		return addr.String(), nil
	}

	name, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHostName, err)
	}

	addrs, err := r.LookupHost(ctx, name)
	if err != nil {
		log.DebugContext(ctx, "Host lookup failed", "error", err)
		return "", err
	}

	for _, a := range addrs {
		addr, pErr := netip.ParseAddr(a)
		if pErr != nil {
			continue
		}
		if addr = addr.Unmap(); addr.Is4() {
			log.DebugContext(ctx, "Resolved host", "address", addr.String(), "candidates", len(addrs))
			return addr.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoIPv4Address, host)
}
