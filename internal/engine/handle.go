package engine

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// readChunkSize is the size of the read buffer Perform pumps the
// response body through. Each full or partial read becomes one write
// callback invocation.
const readChunkSize = 32 * 1024

// WriteFunc receives one chunk of response bytes and returns the number
// of bytes it accepted. Returning anything other than len(chunk) aborts
// the transfer. The engine may invoke it with a zero-length chunk; the
// callback must return 0 in that case.
type WriteFunc func(chunk []byte) int

// Handle is one configurable, reusable transfer session. It borrows the
// shared transport for as long as it lives and releases its engine
// reference on Close. A Handle is not safe for concurrent use.
type Handle struct {
	client  *http.Client
	url     string
	headers *StringList
	write   WriteFunc
	closed  bool
}

// NewHandle initializes the engine if needed and returns a fresh handle.
func NewHandle() (*Handle, error) {
	transport, err := acquire()
	if err != nil {
		return nil, err
	}
	return &Handle{
		client: &http.Client{
			Transport: transport,
			// Redirect responses are returned as-is, never followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Close releases the handle and its engine reference. Safe to call once;
// later calls are no-ops, and all other operations on a closed handle
// report StatusBadHandle.
func (h *Handle) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.url = ""
	h.headers = nil
	h.write = nil
	release()
}

// SetTimeout bounds the whole transfer including body read. Zero means
// no timeout.
func (h *Handle) SetTimeout(d time.Duration) Status {
	if h.closed {
		return StatusBadHandle
	}
	h.client.Timeout = d
	return StatusOK
}

// SetURL configures the transfer target. Only http and https are
// supported.
func (h *Handle) SetURL(rawURL string) Status {
	if h.closed {
		return StatusBadHandle
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return StatusURLMalformat
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return StatusUnsupportedProtocol
	}
	if u.Host == "" {
		return StatusURLMalformat
	}
	h.url = rawURL
	return StatusOK
}

// SetHeaderList installs the header lines for the next Perform. The
// handle borrows the list; the caller keeps ownership and must keep it
// alive until Perform returns. A nil list clears custom headers.
func (h *Handle) SetHeaderList(list *StringList) Status {
	if h.closed {
		return StatusBadHandle
	}
	h.headers = list
	return StatusOK
}

// SetWriteFunc installs the callback that consumes response bytes.
func (h *Handle) SetWriteFunc(fn WriteFunc) Status {
	if h.closed {
		return StatusBadHandle
	}
	h.write = fn
	return StatusOK
}

// Perform runs one blocking GET with the configured URL, headers and
// write callback. Configuration survives the call, so the handle can be
// reconfigured and reused.
func (h *Handle) Perform(ctx context.Context) Status {
	if h.closed {
		return StatusBadHandle
	}
	if h.url == "" {
		return StatusURLMalformat
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return StatusURLMalformat
	}
	if h.headers != nil {
		for _, line := range h.headers.Values() {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			req.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	buf := make([]byte, readChunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if h.write != nil {
			if h.write(buf[:n]) != n {
				return StatusAbortedByCallback
			}
		}
		if rerr == io.EOF {
			return StatusOK
		}
		if rerr != nil {
			if isTimeout(rerr) {
				return StatusOperationTimedOut
			}
			return StatusRecvError
		}
	}
}

// classify maps a request error onto the engine's status space.
func classify(err error) Status {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return StatusCouldntResolveHost
	}
	if isTimeout(err) {
		return StatusOperationTimedOut
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return StatusCouldntConnect
	}
	return StatusSendError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
