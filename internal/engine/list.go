package engine

import "errors"

// ErrListFreed is returned when appending to a StringList after Free.
var ErrListFreed = errors.New("engine: append to freed string list")

type stringNode struct {
	value string
	next  *stringNode
}

// StringList is an append-only linked list of header lines. A list is
// owned by exactly one holder and freed exactly once; appending after
// Free fails. The zero value is not usable, construct via NewStringList.
type StringList struct {
	head  *stringNode
	tail  *stringNode
	count int
	freed bool
}

// NewStringList returns an empty, appendable list. An empty list is
// valid to install on a handle; it simply contributes no headers.
func NewStringList() *StringList {
	return &StringList{}
}

// Append adds one line to the end of the list.
func (l *StringList) Append(value string) error {
	if l.freed {
		return ErrListFreed
	}
	node := &stringNode{value: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.count++
	return nil
}

// Free releases the list. Calling Free again is a no-op.
func (l *StringList) Free() {
	l.head = nil
	l.tail = nil
	l.count = 0
	l.freed = true
}

// Len reports the number of lines in the list.
func (l *StringList) Len() int {
	return l.count
}

// Values returns the lines in append order. A freed list yields nil.
func (l *StringList) Values() []string {
	if l.head == nil {
		return nil
	}
	values := make([]string, 0, l.count)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}
