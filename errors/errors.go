package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // schema text parsing
	PhaseCompile   Phase = "compile"   // type resolution and layout
	PhaseLayout    Phase = "layout"    // descriptor vs. Go type invariants
	PhaseTransport Phase = "transport" // transport operations
	PhaseModule    Phase = "module"    // module entry boundary
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType     Kind = "unknown_type"
	KindInvalidArray    Kind = "invalid_array"
	KindMissingName     Kind = "missing_name"
	KindTrailingGarbage Kind = "trailing_garbage"
	KindInvalidName     Kind = "invalid_name"
	KindDuplicateField  Kind = "duplicate_field"
	KindReadFailed      Kind = "read_failed"
	KindTooLarge        Kind = "too_large"
	KindSizeMismatch    Kind = "size_mismatch"
	KindAdvertise       Kind = "advertise_failed"
	KindTransport       Kind = "transport_failed"
	KindPanic           Kind = "panic"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" || e.Line > 0 {
		b.WriteString(" at ")
		if e.File != "" {
			b.WriteString(e.File)
		} else {
			b.WriteString("<input>")
		}
		if e.Line > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Line))
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// At sets the schema source position
func (b *Builder) At(file string, line int) *Builder {
	b.err.File = file
	b.err.Line = line
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Schema error constructors

// UnknownType creates an error for an unrecognized schema type token
func UnknownType(file string, line int, token string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindUnknownType,
		File:   file,
		Line:   line,
		Detail: fmt.Sprintf("unknown type `%s`", token),
		Value:  token,
	}
}

// MissingBracket creates an error for an array suffix without a closing `]`
func MissingBracket(file string, line int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidArray,
		File:   file,
		Line:   line,
		Detail: "missing `]`",
	}
}

// InvalidArrayLength creates an error for a malformed array length
func InvalidArrayLength(file string, line int, text string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidArray,
		File:   file,
		Line:   line,
		Detail: fmt.Sprintf("invalid array length %q", text),
		Value:  text,
	}
}

// MissingName creates an error for a schema line without a field name
func MissingName(file string, line int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMissingName,
		File:   file,
		Line:   line,
		Detail: "missing name",
	}
}

// TrailingGarbage creates an error for extra tokens after the field name
func TrailingGarbage(file string, line int, extra string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTrailingGarbage,
		File:   file,
		Line:   line,
		Detail: fmt.Sprintf("garbage after end of line: %q", extra),
		Value:  extra,
	}
}

// InvalidName creates an error for a field name that is not an identifier
func InvalidName(file string, line int, name string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidName,
		File:   file,
		Line:   line,
		Detail: fmt.Sprintf("invalid field name %q", name),
		Value:  name,
	}
}

// DuplicateField creates an error for a field declared twice
func DuplicateField(file string, line int, name string, first int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindDuplicateField,
		File:   file,
		Line:   line,
		Detail: fmt.Sprintf("field %q already declared on line %d", name, first),
		Value:  name,
	}
}

// ReadFailed creates an error for an unreadable schema file
func ReadFailed(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindReadFailed,
		File:   file,
		Detail: "unable to read schema",
		Cause:  cause,
	}
}

// TooLarge creates an error for a message exceeding the 16-bit size limit
func TooLarge(file string, size uint32) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindTooLarge,
		File:   file,
		Detail: fmt.Sprintf("message size too big: %d bytes (max 65535)", size),
		Value:  size,
	}
}

// Run-time constructors

// SizeMismatch creates a layout invariant violation error
func SizeMismatch(name, what string, got, want uintptr) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindSizeMismatch,
		Detail: fmt.Sprintf("%s: %s is %d bytes, descriptor says %d", name, what, got, want),
		Value:  got,
	}
}

// NilMessage creates an error for a nil message pointer passed to a handle
func NilMessage(name, op string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("%s: nil message passed to %s", name, op),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Panic creates an error describing a recovered panic
func Panic(module string, value any, location string) *Error {
	detail := fmt.Sprintf("module %s panicked at '%v'", module, value)
	if location != "" {
		detail += ", " + location
	}
	return &Error{
		Phase:  PhaseModule,
		Kind:   KindPanic,
		Detail: detail,
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
