package uorb

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/orb/errors"
)

// messageAlign is the alignment every compiled message size is rounded to.
const messageAlign = 8

// Message is implemented by generated message types.
type Message interface {
	Metadata() *Metadata
}

// Metadata describes one message type: its topic name, in-memory size with
// and without trailing padding, and the field descriptor string.
// A Metadata is immutable once created.
type Metadata struct {
	name          string
	fields        string
	nameC         []byte
	fieldsC       []byte
	size          uint16
	sizeNoPadding uint16
}

// NewMetadata builds the descriptor of message type T and checks it against
// the Go type: T must occupy exactly size bytes.
func NewMetadata[T any](name string, size, sizeNoPadding uint16, fields string) (*Metadata, error) {
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseLayout, "metadata: empty message name")
	}
	if sizeNoPadding > size {
		return nil, errors.New(errors.PhaseLayout, errors.KindSizeMismatch).
			Detail("%s: size without padding %d exceeds size %d", name, sizeNoPadding, size).
			Build()
	}
	if size%messageAlign != 0 {
		return nil, errors.New(errors.PhaseLayout, errors.KindSizeMismatch).
			Detail("%s: size %d is not a multiple of %d", name, size, messageAlign).
			Build()
	}

	var zero T
	if got := unsafe.Sizeof(zero); got != uintptr(size) {
		return nil, errors.SizeMismatch(name, fmt.Sprintf("Go type %T", zero), got, uintptr(size))
	}

	return &Metadata{
		name:          name,
		fields:        fields,
		nameC:         cString(name),
		fieldsC:       cString(fields),
		size:          size,
		sizeNoPadding: sizeNoPadding,
	}, nil
}

// MustMetadata is like NewMetadata but panics on error.
// Generated code calls it on first use of a message type.
func MustMetadata[T any](name string, size, sizeNoPadding uint16, fields string) *Metadata {
	m, err := NewMetadata[T](name, size, sizeNoPadding, fields)
	if err != nil {
		panic(err)
	}
	return m
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Name returns the topic name.
func (m *Metadata) Name() string { return m.name }

// Size returns the in-memory size of the message, trailing padding included.
func (m *Metadata) Size() uint16 { return m.size }

// SizeNoPadding returns the size up to the end of the last real field.
func (m *Metadata) SizeNoPadding() uint16 { return m.sizeNoPadding }

// Fields returns the field descriptor string.
func (m *Metadata) Fields() string { return m.fields }

// NameBytes returns the topic name as a NUL-terminated byte slice.
// The slice is shared and must not be modified.
func (m *Metadata) NameBytes() []byte { return m.nameC }

// FieldsBytes returns the descriptor as a NUL-terminated byte slice.
// The slice is shared and must not be modified.
func (m *Metadata) FieldsBytes() []byte { return m.fieldsC }

func (m *Metadata) String() string {
	return fmt.Sprintf("%s(%d/%d)", m.name, m.sizeNoPadding, m.size)
}

// bytesOf views v as its raw in-memory bytes after checking its size
// against the descriptor. A mismatch is a broken build, so it panics, as
// does a nil v.
func bytesOf[T any](m *Metadata, v *T, op string) []byte {
	if v == nil {
		panic(errors.NilMessage(m.name, op))
	}
	n := unsafe.Sizeof(*v)
	if n != uintptr(m.size) {
		panic(errors.SizeMismatch(m.name, fmt.Sprintf("Go type %T", *v), n, uintptr(m.size)))
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), n)
}
