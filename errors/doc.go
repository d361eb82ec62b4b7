// Package errors provides structured error types for the message bus and
// schema compiler.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Schema errors carry the file and line of the offending schema
// line, so a diagnostic always points at the source:
//
//	[compile] unknown_type at msg/foo.msg:3: unknown type `uint128`
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidArray).
//		At("msg/foo.msg", 3).
//		Detail("invalid array length %q", "x").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType(path, line, "uint128")
//	err := errors.SizeMismatch("debug_value", "Go type", 24, 16)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind are equal.
package errors
