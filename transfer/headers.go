package transfer

import (
	"sort"
	"strings"

	"github.com/snaghq/snag/internal/engine"
)

// HeaderList is an ordered collection of "Name: value" lines backed by
// the engine's native string list. It is owned by exactly one holder and
// released exactly once. Entries keep insertion order, so a HeaderList
// built via Add is the order-preserving way to control wire order.
type HeaderList struct {
	list *engine.StringList
}

// NewHeaderList returns an empty header list. An empty list is valid to
// install on a handle and contributes no headers.
func NewHeaderList() *HeaderList {
	return &HeaderList{list: engine.NewStringList()}
}

// Add formats "<name>: <value>" and appends it to the list.
func (h *HeaderList) Add(name, value string) error {
	if err := validateHeader(name, value); err != nil {
		return err
	}
	if h.list == nil {
		return newError("header list already released")
	}
	if err := h.list.Append(name + ": " + value); err != nil {
		// The native list is gone; drop our reference so the list is
		// not half-owned.
		h.Release()
		return newError("appending header %q failed: %v", name, err)
	}
	return nil
}

// Len reports the number of header lines.
func (h *HeaderList) Len() int {
	if h == nil || h.list == nil {
		return 0
	}
	return h.list.Len()
}

// Lines returns the formatted header lines in list order.
func (h *HeaderList) Lines() []string {
	if h == nil || h.list == nil {
		return nil
	}
	return h.list.Values()
}

// Release frees the native list. Calling Release again is a no-op.
func (h *HeaderList) Release() {
	if h == nil || h.list == nil {
		return
	}
	h.list.Free()
	h.list = nil
}

// native exposes the underlying list for handle installation.
func (h *HeaderList) native() *engine.StringList {
	if h == nil {
		return nil
	}
	return h.list
}

// buildHeaderList converts a header map into a HeaderList. Names are
// sorted so the wire order is deterministic even though map iteration is
// not. A partial list is released on any failure; an empty map yields an
// empty, valid list.
func buildHeaderList(headers map[string]string) (*HeaderList, error) {
	list := NewHeaderList()

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := list.Add(name, headers[name]); err != nil {
			list.Release()
			return nil, err
		}
	}
	return list, nil
}

// validateHeader rejects names and values that would corrupt the wire
// format.
func validateHeader(name, value string) error {
	if name == "" {
		return newError("header name is empty")
	}
	if strings.ContainsAny(name, ": \t\r\n") {
		return newError("header name %q contains illegal characters", name)
	}
	if strings.ContainsAny(value, "\r\n") {
		return newError("header %q value contains line breaks", name)
	}
	return nil
}
