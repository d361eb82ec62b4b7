// Package canon computes Component Model canonical-ABI layouts for the subset
// of WIT types a compiled message maps onto: fixed-width primitives, tuples
// (fixed arrays and padding runs) and one flat record.
//
// # Layout Rules
//
//   - Primitives: size equals alignment (u8=1, u16=2, u32=4, u64=8)
//   - Tuples: elements laid out sequentially, aligned to the widest element
//   - Records: fields laid out sequentially with padding for alignment
//
// A message layout already carries explicit padding, so its canonical record
// layout must reproduce the compiled offsets exactly. The msg package uses
// that as an independent check of the layout compiler.
package canon
