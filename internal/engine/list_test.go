package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestStringListAppendOrder(t *testing.T) {
	list := NewStringList()
	lines := []string{"Accept: text/plain", "X-Test: 1", "X-Test: 2"}
	for _, line := range lines {
		if err := list.Append(line); err != nil {
			t.Fatalf("Append(%q) error = %v", line, err)
		}
	}

	if list.Len() != len(lines) {
		t.Errorf("Len() = %d, want %d", list.Len(), len(lines))
	}
	if got := list.Values(); !reflect.DeepEqual(got, lines) {
		t.Errorf("Values() = %v, want %v", got, lines)
	}
}

func TestStringListEmptyIsValid(t *testing.T) {
	list := NewStringList()
	if list.Len() != 0 {
		t.Errorf("Len() = %d, want 0", list.Len())
	}
	if got := list.Values(); got != nil {
		t.Errorf("Values() = %v, want nil", got)
	}
	// An empty list must still accept appends.
	if err := list.Append("X: y"); err != nil {
		t.Errorf("Append() on empty list error = %v", err)
	}
}

func TestStringListFree(t *testing.T) {
	list := NewStringList()
	if err := list.Append("X: 1"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	list.Free()
	if err := list.Append("X: 2"); !errors.Is(err, ErrListFreed) {
		t.Errorf("Append() after Free error = %v, want ErrListFreed", err)
	}
	if list.Len() != 0 {
		t.Errorf("Len() after Free = %d, want 0", list.Len())
	}

	// Double free must be harmless.
	list.Free()
}
