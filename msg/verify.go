package msg

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/orb/errors"
	"github.com/wippyai/orb/msg/internal/canon"
)

var witScalars = map[string]wit.Type{
	"uint64":  wit.U64{},
	"uint32":  wit.U32{},
	"uint16":  wit.U16{},
	"uint8":   wit.U8{},
	"byte":    wit.U8{},
	"int64":   wit.S64{},
	"int32":   wit.S32{},
	"int16":   wit.S16{},
	"int8":    wit.S8{},
	"float64": wit.F64{},
	"float32": wit.F32{},
	"char":    wit.U8{}, // C char is one byte; WIT char is a 4-byte scalar value
	"bool":    wit.Bool{},
}

// WITRecord renders the layout as a WIT record in final field order. Arrays
// and padding runs become homogeneous tuples.
func (l *Layout) WITRecord() *wit.TypeDef {
	fields := make([]wit.Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		elem := witScalars[f.Type.Token]
		var typ wit.Type = elem
		if f.IsArray {
			types := make([]wit.Type, f.Len)
			for i := range types {
				types[i] = elem
			}
			typ = &wit.TypeDef{Kind: &wit.Tuple{Types: types}}
		}
		fields = append(fields, wit.Field{Name: f.Name, Type: typ})
	}
	return &wit.TypeDef{Kind: &wit.Record{Fields: fields}}
}

// Verify checks the compiled layout against the canonical-ABI layout of its
// WIT rendering: every offset and the total size must agree. Fields are
// matched by position.
func Verify(l *Layout) error {
	info, err := canon.Of(l.WITRecord())
	if err != nil {
		return err
	}

	for i, f := range l.Fields {
		if got := info.Offsets[i]; got != f.Offset {
			return errors.New(errors.PhaseLayout, errors.KindSizeMismatch).
				At(l.File, f.Line).
				Detail("%s.%s: canonical offset %d, compiled offset %d", l.Name, f.Name, got, f.Offset).
				Build()
		}
		if f.Offset%f.Type.Width != 0 {
			return errors.New(errors.PhaseLayout, errors.KindSizeMismatch).
				At(l.File, f.Line).
				Detail("%s.%s: offset %d not aligned to %d", l.Name, f.Name, f.Offset, f.Type.Width).
				Build()
		}
	}

	if canon.AlignTo(info.Size, MessageAlign) != l.Size {
		return errors.SizeMismatch(l.Name, "canonical record", uintptr(info.Size), uintptr(l.Size))
	}
	if l.Size%MessageAlign != 0 || l.SizeNoPadding > l.Size || l.Size-l.SizeNoPadding >= MessageAlign {
		return errors.InvalidInput(errors.PhaseLayout, fmt.Sprintf("%s: inconsistent sizes %d/%d", l.Name, l.SizeNoPadding, l.Size))
	}
	return nil
}
