// Package engine is the transfer engine underneath the transfer package.
// It owns the process-wide HTTP transport and exposes the small set of
// primitives a transfer needs: a global acquire/release pair, a reusable
// Handle, a StringList for header lines, and Status codes for failures.
package engine

import (
	"net/http"
	"sync"
	"time"
)

// global is the process-wide engine state. Initialization runs at most
// once per process; concurrent first acquires are serialized by the
// mutex. The refcount tracks live handles so the last release can flush
// idle connections.
var global struct {
	mu        sync.Mutex
	started   bool
	refs      int
	transport *http.Transport
	err       error
}

// buildTransport constructs the shared transport. Package variable so
// tests can inject an init failure.
var buildTransport = defaultTransport

func defaultTransport() (*http.Transport, error) {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}, nil
}

// acquire initializes the engine on first use and registers one
// reference. An init failure is sticky: every later acquire fails with
// the same error.
func acquire() (*http.Transport, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if !global.started {
		global.transport, global.err = buildTransport()
		global.started = true
	}
	if global.err != nil {
		return nil, global.err
	}

	global.refs++
	return global.transport, nil
}

// release drops one reference. The last release flushes idle
// connections; the transport itself stays valid so a later acquire can
// reuse it without re-initializing.
func release() {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.refs == 0 {
		return
	}
	global.refs--
	if global.refs == 0 && global.transport != nil {
		global.transport.CloseIdleConnections()
	}
}
