package msg

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/orb/errors"
)

func TestVerifyCompiled(t *testing.T) {
	schemas := map[string]string{
		"reference":   testSchema,
		"debug_value": "uint64 timestamp\nfloat32 value\nint8 ind\n",
		"chars":       "char[7] label\nuint16 id\n",
		"mixed":       "bool a\nfloat64 b\nint32[3] c\nuint16 d\n",
	}
	for name, src := range schemas {
		t.Run(name, func(t *testing.T) {
			l, err := Compile(name, "", []byte(src))
			require.NoError(t, err)
			assert.NoError(t, Verify(l))
		})
	}
}

func TestWITRecord(t *testing.T) {
	l, err := Compile("m", "", []byte("uint16[3] a\nchar c\n"))
	require.NoError(t, err)

	rec, ok := l.WITRecord().Kind.(*wit.Record)
	require.True(t, ok)
	require.Len(t, rec.Fields, 3)

	assert.Equal(t, "a", rec.Fields[0].Name)
	tuple := rec.Fields[0].Type.(*wit.TypeDef).Kind.(*wit.Tuple)
	assert.Len(t, tuple.Types, 3)

	assert.Equal(t, "c", rec.Fields[1].Name)
	assert.Equal(t, wit.U8{}, rec.Fields[1].Type)

	assert.Equal(t, "_padding0", rec.Fields[2].Name)
}

func TestVerifyDetectsTampering(t *testing.T) {
	t.Run("offset", func(t *testing.T) {
		l, err := Compile("m", "m.msg", []byte("uint32 a\nuint8 b\n"))
		require.NoError(t, err)
		l.Fields[1].Offset = 5

		err = Verify(l)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindSizeMismatch}))
		assert.Contains(t, err.Error(), "m.b")
	})

	t.Run("size", func(t *testing.T) {
		l, err := Compile("m", "m.msg", []byte("uint32 a\nuint8 b\n"))
		require.NoError(t, err)
		l.Size = 16

		err = Verify(l)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "canonical record")
	})

	t.Run("sizes", func(t *testing.T) {
		l, err := Compile("m", "m.msg", []byte("uint64 a\n"))
		require.NoError(t, err)
		l.SizeNoPadding = 9

		err = Verify(l)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inconsistent sizes")
	})
}

func TestVerifyMatchesByPosition(t *testing.T) {
	l, err := Compile("m", "m.msg", []byte("uint8 pad\nuint32 x\n"))
	require.NoError(t, err)

	// a member sharing its name with the padding run still verifies
	l.Fields[1].Name = l.Fields[2].Name
	assert.NoError(t, Verify(l))

	l.Fields[2].Offset = 4
	err = Verify(l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical offset 5, compiled offset 4")
}
