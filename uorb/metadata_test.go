package uorb_test

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/orb/errors"
	"github.com/wippyai/orb/uorb"
)

const testFields = "uint64_t value;int16_t[12] array;bool[2] array2;int8_t value2;char ch;uint8_t[4] _padding0;"

type testMessage struct {
	Value  uint64
	Array  [12]int16
	Array2 [2]bool
	Value2 int8
	Ch     byte // char
	_      [4]uint8
}

var testMessageMetadata = sync.OnceValue(func() *uorb.Metadata {
	return uorb.MustMetadata[testMessage]("test_message", 40, 36, testFields)
})

func (testMessage) Metadata() *uorb.Metadata { return testMessageMetadata() }

// shortMessage claims the test_message layout but is smaller.
type shortMessage struct {
	Value uint64
}

func (shortMessage) Metadata() *uorb.Metadata { return testMessageMetadata() }

func TestMetadata(t *testing.T) {
	m := testMessage{}.Metadata()
	assert.Equal(t, "test_message", m.Name())
	assert.Equal(t, uint16(40), m.Size())
	assert.Equal(t, uint16(36), m.SizeNoPadding())
	assert.Equal(t, testFields, m.Fields())
	assert.Equal(t, "test_message(36/40)", m.String())
	assert.Same(t, m, testMessage{}.Metadata())

	name := m.NameBytes()
	require.Len(t, name, len("test_message")+1)
	assert.Equal(t, byte(0), name[len(name)-1])
	assert.Equal(t, "test_message", string(name[:len(name)-1]))

	fields := m.FieldsBytes()
	assert.Equal(t, byte(0), fields[len(fields)-1])
	assert.Equal(t, testFields, string(fields[:len(fields)-1]))
}

func TestNewMetadataErrors(t *testing.T) {
	tests := []struct {
		name          string
		topic         string
		size          uint16
		sizeNoPadding uint16
		kind          errors.Kind
	}{
		{"empty name", "", 40, 36, errors.KindInvalidInput},
		{"padding exceeds size", "t", 40, 41, errors.KindSizeMismatch},
		{"unaligned size", "t", 36, 36, errors.KindSizeMismatch},
		{"go type mismatch", "t", 48, 36, errors.KindSizeMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := uorb.NewMetadata[testMessage](tc.topic, tc.size, tc.sizeNoPadding, testFields)
			require.Error(t, err)
			assert.Nil(t, m)

			var e *errors.Error
			require.True(t, stderrors.As(err, &e))
			assert.Equal(t, errors.PhaseLayout, e.Phase)
			assert.Equal(t, tc.kind, e.Kind)
		})
	}
}

func TestMustMetadataPanics(t *testing.T) {
	assert.Panics(t, func() {
		uorb.MustMetadata[shortMessage]("short", 40, 36, testFields)
	})
	assert.NotPanics(t, func() {
		uorb.MustMetadata[shortMessage]("short", 8, 8, "uint64_t value;")
	})
}

func TestEmptyMessage(t *testing.T) {
	m, err := uorb.NewMetadata[struct{}]("empty", 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, uint16(0), m.Size())
}
