package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "schema error",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindUnknownType,
				File:   "msg/foo.msg",
				Line:   3,
				Detail: "unknown type `uint128`",
			},
			contains: []string{"[compile]", "unknown_type", "msg/foo.msg:3", "uint128"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTransport,
				Kind:  KindAdvertise,
			},
			contains: []string{"[transport]", "advertise_failed"},
		},
		{
			name: "line without file",
			err: &Error{
				Phase: PhaseParse,
				Kind:  KindMissingName,
				Line:  7,
			},
			contains: []string{"<input>:7"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindReadFailed,
				Detail: "unable to read schema",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[parse]", "read_failed", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ReadFailed("a.msg", cause)

	assert.ErrorIs(t, err.Unwrap(), cause)
	assert.ErrorIs(t, err, cause, "errors.Is should find the cause through the chain")
}

func TestError_Is(t *testing.T) {
	err := UnknownType("a.msg", 1, "foo")

	assert.True(t, err.Is(&Error{Phase: PhaseCompile, Kind: KindUnknownType}), "same phase and kind")
	assert.False(t, err.Is(&Error{Phase: PhaseParse, Kind: KindUnknownType}), "different phase")
	assert.False(t, err.Is(&Error{Phase: PhaseCompile, Kind: KindTooLarge}), "different kind")

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 1, target.Line)
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseParse, KindInvalidArray).
		At("foo.msg", 12).
		Value("x").
		Cause(cause).
		Detail("invalid array length %q", "x").
		Build()

	assert.Equal(t, PhaseParse, err.Phase)
	assert.Equal(t, KindInvalidArray, err.Kind)
	assert.Equal(t, "foo.msg", err.File)
	assert.Equal(t, 12, err.Line)
	assert.Equal(t, "x", err.Value)
	assert.ErrorIs(t, err.Cause, cause)
	assert.Equal(t, `invalid array length "x"`, err.Detail)
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"MissingBracket", MissingBracket("f", 1), PhaseParse, KindInvalidArray},
		{"InvalidArrayLength", InvalidArrayLength("f", 1, "-1"), PhaseParse, KindInvalidArray},
		{"MissingName", MissingName("f", 1), PhaseParse, KindMissingName},
		{"TrailingGarbage", TrailingGarbage("f", 1, "x"), PhaseParse, KindTrailingGarbage},
		{"InvalidName", InvalidName("f", 1, "1a"), PhaseParse, KindInvalidName},
		{"DuplicateField", DuplicateField("f", 2, "a", 1), PhaseParse, KindDuplicateField},
		{"TooLarge", TooLarge("f", 70000), PhaseCompile, KindTooLarge},
		{"SizeMismatch", SizeMismatch("m", "Go type", 8, 16), PhaseLayout, KindSizeMismatch},
		{"NilMessage", NilMessage("m", "publish"), PhaseLayout, KindInvalidInput},
		{"InvalidInput", InvalidInput(PhaseModule, "bad"), PhaseModule, KindInvalidInput},
		{"Panic", Panic("m", "boom", "main.go:3"), PhaseModule, KindPanic},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.phase, tc.err.Phase)
			assert.Equal(t, tc.kind, tc.err.Kind)
		})
	}

	t.Run("TooLarge detail", func(t *testing.T) {
		assert.Contains(t, TooLarge("f", 70000).Detail, "70000")
	})

	t.Run("NilMessage detail", func(t *testing.T) {
		assert.Equal(t, "m: nil message passed to copy", NilMessage("m", "copy").Detail)
	})

	t.Run("Panic detail", func(t *testing.T) {
		assert.Contains(t, Panic("mod", "boom", "main.go:3").Error(), "panicked at 'boom', main.go:3")
	})
}
