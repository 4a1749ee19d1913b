// Package netcheck probes reachability of the dataset host.
package netcheck

import (
	"context"
	"net"
	"time"

	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
	"github.com/openlexica/lexa-cli/internal/logger"
)

// defaultProbeTimeout keeps startup snappy when the network is down.
const defaultProbeTimeout = 3 * time.Second

// Ensure Checker implements the interface.
var _ driven.ConnectivityChecker = (*Checker)(nil)

// Checker reports whether the dataset host accepts TCP connections.
// It is a point-in-time probe, consulted once per freshness run.
type Checker struct {
	host    string
	timeout time.Duration
}

// NewChecker creates a connectivity checker for the given host. The host
// may carry a port; 443 is assumed otherwise.
func NewChecker(host string) *Checker {
	return &Checker{
		host:    host,
		timeout: defaultProbeTimeout,
	}
}

// Online returns true when a TCP connection to the host succeeds within
// the probe timeout.
func (c *Checker) Online(ctx context.Context) bool {
	if c.host == "" {
		return false
	}

	addr := c.host
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "443")
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		logger.Debug("connectivity probe to %s failed: %v", addr, err)
		return false
	}
	conn.Close()
	return true
}
