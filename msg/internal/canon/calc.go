package canon

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/orb/errors"
)

// Info is the canonical-ABI footprint of a type.
type Info struct {
	// Offsets holds record field offsets in declaration order.
	// It is nil for anything but a record.
	Offsets []uint32
	Size    uint32
	Align   uint32
}

// Of returns the canonical-ABI layout of t. Only the types a message renders
// to are accepted: fixed-width scalars, and tuples and records built from them.
func Of(t wit.Type) (Info, error) {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return scalar(1), nil
	case wit.U16, wit.S16:
		return scalar(2), nil
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return scalar(4), nil
	case wit.U64, wit.S64, wit.F64:
		return scalar(8), nil
	case *wit.TypeDef:
		switch kind := typ.Kind.(type) {
		case *wit.Record:
			types := make([]wit.Type, len(kind.Fields))
			for i, f := range kind.Fields {
				types[i] = f.Type
			}
			return sequence(types, true)
		case *wit.Tuple:
			return sequence(kind.Types, false)
		case wit.Type:
			return Of(kind)
		}
		return Info{}, unsupported(typ.Kind)
	}
	return Info{}, unsupported(t)
}

func scalar(n uint32) Info {
	return Info{Size: n, Align: n}
}

// sequence places elements one after another, each at its own alignment,
// and rounds the total up to the widest alignment seen.
func sequence(types []wit.Type, record bool) (Info, error) {
	info := Info{Align: 1}
	if record {
		info.Offsets = make([]uint32, 0, len(types))
	}

	var offset uint32
	for _, t := range types {
		elem, err := Of(t)
		if err != nil {
			return Info{}, err
		}
		offset = AlignTo(offset, elem.Align)
		if record {
			info.Offsets = append(info.Offsets, offset)
		}
		offset += elem.Size
		info.Align = max(info.Align, elem.Align)
	}

	info.Size = AlignTo(offset, info.Align)
	return info, nil
}

func unsupported(v any) error {
	return errors.InvalidInput(errors.PhaseLayout, fmt.Sprintf("canonical layout: unsupported type %T", v))
}

// AlignTo rounds offset up to a multiple of align, a power of two.
// An align of 0 leaves offset unchanged.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
