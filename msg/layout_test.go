package msg

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `# reference message
int16[12] array   # twelve samples
bool[2] array2
uint64 value

int8 value2
char ch
`

func TestCompileReference(t *testing.T) {
	l, err := Compile("test_message", "test.msg", []byte(testSchema))
	require.NoError(t, err)

	assert.Equal(t, "test_message", l.Name)
	assert.Equal(t, uint32(40), l.Size)
	assert.Equal(t, uint32(36), l.SizeNoPadding)
	assert.Equal(t,
		"uint64_t value;"+
			"int16_t[12] array;"+
			"bool[2] array2;"+
			"int8_t value2;"+
			"char ch;"+
			"uint8_t[4] _padding0;",
		l.Descriptor())

	offsets := []struct {
		name   string
		offset uint32
		size   uint32
	}{
		{"value", 0, 8},
		{"array", 8, 24},
		{"array2", 32, 2},
		{"value2", 34, 1},
		{"ch", 35, 1},
		{"_padding0", 36, 4},
	}
	for _, tc := range offsets {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := l.Field(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.offset, f.Offset)
			assert.Equal(t, tc.size, f.Size())
		})
	}

	assert.Len(t, l.Members(), 5)
	assert.Equal(t, uint32(4), l.Padding())
}

func TestCompileInteriorPadding(t *testing.T) {
	src := "uint8 a\nuint32 b\nuint8[3] c\nuint16 d\n"
	l, err := Compile("pad", "", []byte(src))
	require.NoError(t, err)

	// b(4) d(2) a(1) c(3) -> a ends at 7, c at 7..10, pad to 16
	assert.Equal(t, "uint32_t b;uint16_t d;uint8_t a;uint8_t[3] c;uint8_t[6] _padding0;", l.Descriptor())
	assert.Equal(t, uint32(10), l.SizeNoPadding)
	assert.Equal(t, uint32(16), l.Size)

	src = "uint8 a\nuint8 b\nuint8 c\nuint32[1] d\nuint64 e\n"
	l, err = Compile("pad2", "", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "uint64_t e;uint32_t[1] d;uint8_t a;uint8_t b;uint8_t c;uint8_t[1] _padding0;", l.Descriptor())
	assert.Equal(t, uint32(15), l.SizeNoPadding)
	assert.Equal(t, uint32(16), l.Size)
}

func TestCompileEmpty(t *testing.T) {
	l, err := Compile("empty", "", []byte("# nothing here\n\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), l.Size)
	assert.Equal(t, uint32(0), l.SizeNoPadding)
	assert.Equal(t, "", l.Descriptor())
}

func TestCompileSizeLimit(t *testing.T) {
	t.Run("exact_limit_rejected_after_padding", func(t *testing.T) {
		// 65535 bytes of payload pads to 65536
		_, err := Compile("big", "big.msg", []byte("uint8[65535] data\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too_large")
	})

	t.Run("largest_accepted", func(t *testing.T) {
		l, err := Compile("big", "big.msg", []byte("uint8[65528] data\n"))
		require.NoError(t, err)
		assert.Equal(t, uint32(65528), l.Size)
	})

	t.Run("huge_array", func(t *testing.T) {
		_, err := Compile("big", "big.msg", []byte("uint64[4294967295] data\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too_large")
	})
}

func TestCompileDeterministic(t *testing.T) {
	first, err := Compile("m", "", []byte(testSchema))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compile("m", "", []byte(testSchema))
		require.NoError(t, err)
		assert.Equal(t, first.Descriptor(), again.Descriptor())
		assert.Equal(t, first.Size, again.Size)
		assert.Equal(t, first.SizeNoPadding, again.SizeNoPadding)
	}
}

func TestCompileStableOrder(t *testing.T) {
	l, err := Compile("m", "", []byte("uint32 z\nfloat32 a\nint32 m\n"))
	require.NoError(t, err)
	assert.Equal(t, "uint32_t z;float a;int32_t m;uint8_t[4] _padding0;", l.Descriptor())
}

func randomSchema(r *rand.Rand) string {
	tokens := make([]string, 0, len(builtins))
	for tok := range builtins {
		tokens = append(tokens, tok)
	}
	slices.Sort(tokens)

	var b strings.Builder
	n := r.Intn(12)
	for i := 0; i < n; i++ {
		tok := tokens[r.Intn(len(tokens))]
		if r.Intn(3) == 0 {
			fmt.Fprintf(&b, "%s[%d] f%d\n", tok, 1+r.Intn(9), i)
		} else {
			fmt.Fprintf(&b, "%s f%d\n", tok, i)
		}
	}
	return b.String()
}

func TestCompileProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		src := randomSchema(r)
		l, err := Compile("p", "", []byte(src))
		require.NoError(t, err, src)

		assert.Zero(t, l.Size%8, src)
		assert.LessOrEqual(t, l.SizeNoPadding, l.Size, src)
		assert.LessOrEqual(t, l.Size, l.SizeNoPadding+7, src)

		var offset uint32
		for _, f := range l.Fields {
			assert.Equal(t, offset, f.Offset, "contiguous: %s", src)
			assert.Zero(t, f.Offset%f.Type.Width, "aligned %s: %s", f.Name, src)
			offset += f.Size()
		}
		assert.Equal(t, l.Size, offset)

		for j := 1; j < len(l.Members()); j++ {
			prev, cur := l.Members()[j-1], l.Members()[j]
			assert.GreaterOrEqual(t, prev.Type.Width, cur.Type.Width, src)
		}

		require.NoError(t, Verify(l), src)
	}
}

func TestMessageName(t *testing.T) {
	assert.Equal(t, "debug_value", MessageName("msg/debug_value.msg"))
	assert.Equal(t, "plain", MessageName("plain"))
}

func TestCompileFile(t *testing.T) {
	_, err := CompileFile(t.TempDir() + "/missing.msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read_failed")
	assert.Contains(t, err.Error(), "missing.msg")
}
