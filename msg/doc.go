// Package msg compiles message schemas into fixed, C-compatible layouts.
//
// A schema is a line-oriented list of fields, one `<type>[N] <name>` per
// line, with `#` starting a comment:
//
//	uint64 timestamp   # time since boot, microseconds
//	float32 value
//	int8 ind
//
// Recognized base types are uint8/byte, uint16, uint32, uint64, int8, int16,
// int32, int64, float32, float64, bool and char.
//
// # Layout Rules
//
// Fields are stably sorted by descending element width, then placed in order.
// A synthetic `uint8_t[K] _paddingN` field is inserted before any field whose
// offset is not a multiple of its width, and once more at the end to round the
// message up to 8 bytes. The result is deterministic: the same schema text
// always yields the same layout and descriptor string.
//
//	layout, err := msg.CompileFile("msg/debug_value.msg")
//	// layout.Size == 16, layout.SizeNoPadding == 13
//	// layout.Descriptor() == "uint64_t timestamp;float value;int8_t ind;uint8_t[3] _padding0;"
//
// The descending-width sort is a heuristic, not an optimal packing. It is
// kept as is because recorded data depends on it.
//
// # Code Generation
//
// Generate renders a Go struct with the compiled layout and a Metadata method
// so the type can be used with the uorb package. cmd/msgc wraps it for
// go:generate use.
package msg
