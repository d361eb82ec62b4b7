package msg

import (
	"slices"
	"strconv"
	"strings"

	"github.com/wippyai/orb/errors"
)

const (
	// MessageAlign is the alignment of every compiled message.
	MessageAlign = 8
	// MaxSize is the largest footprint a descriptor can record.
	MaxSize = 0xFFFF
)

// paddingPrefix starts every synthetic padding field name. Schema fields
// may not use it.
const paddingPrefix = "_padding"

// Field is a field placed in a compiled layout.
type Field struct {
	Type    Type
	Name    string
	Len     uint32
	Offset  uint32
	Line    int // schema line, 0 for padding
	IsArray bool
	Padding bool
}

// Size returns the number of bytes the field occupies.
func (f Field) Size() uint32 {
	return f.Type.Width * f.Len
}

// CType renders the field type the way descriptors spell it: `int16_t[12]`.
func (f Field) CType() string {
	if f.IsArray {
		return f.Type.C + "[" + strconv.FormatUint(uint64(f.Len), 10) + "]"
	}
	return f.Type.C
}

// GoType renders the field type as a Go type expression: `[12]int16`.
func (f Field) GoType() string {
	if f.IsArray {
		return "[" + strconv.FormatUint(uint64(f.Len), 10) + "]" + f.Type.Go
	}
	return f.Type.Go
}

// Layout is the compiled, C-compatible memory layout of one message.
type Layout struct {
	Name          string
	File          string
	Fields        []Field // final order, padding included
	Size          uint32
	SizeNoPadding uint32
}

// Descriptor returns the canonical field descriptor string.
func (l *Layout) Descriptor() string {
	var b strings.Builder
	for _, f := range l.Fields {
		b.WriteString(f.CType())
		b.WriteByte(' ')
		b.WriteString(f.Name)
		b.WriteByte(';')
	}
	return b.String()
}

// Field returns a placed field by name.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Members returns the declared fields in layout order, without padding.
func (l *Layout) Members() []Field {
	out := make([]Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		if !f.Padding {
			out = append(out, f)
		}
	}
	return out
}

// Padding returns the total number of synthetic padding bytes.
func (l *Layout) Padding() uint32 {
	var n uint32
	for _, f := range l.Fields {
		if f.Padding {
			n += f.Size()
		}
	}
	return n
}

// Build places declarations: widest first (stable), explicit padding before
// any misaligned field, and a trailing pad up to MessageAlign.
func Build(name, file string, decls []Decl) (*Layout, error) {
	sorted := slices.Clone(decls)
	slices.SortStableFunc(sorted, func(a, b Decl) int {
		return int(b.Type.Width) - int(a.Type.Width)
	})

	p := placer{fields: make([]Field, 0, len(sorted)+2)}
	for _, d := range sorted {
		p.pad(uint64(d.Type.Width))
		if p.offset+d.Size() > MaxSize {
			return nil, errors.TooLarge(file, uint32(min(p.offset+d.Size(), 1<<32-1)))
		}
		p.fields = append(p.fields, Field{
			Type:    d.Type,
			Name:    d.Name,
			Len:     d.Len,
			Offset:  uint32(p.offset),
			Line:    d.Line,
			IsArray: d.IsArray,
		})
		p.offset += d.Size()
	}
	sizeNoPadding := p.offset
	p.pad(MessageAlign)

	if p.offset > MaxSize {
		return nil, errors.TooLarge(file, uint32(p.offset))
	}

	return &Layout{
		Name:          name,
		File:          file,
		Fields:        p.fields,
		Size:          uint32(p.offset),
		SizeNoPadding: uint32(sizeNoPadding),
	}, nil
}

type placer struct {
	fields []Field
	offset uint64
	padNum int
}

func (p *placer) pad(align uint64) {
	misalignment := p.offset % align
	if misalignment == 0 {
		return
	}
	n := align - misalignment
	p.fields = append(p.fields, Field{
		Type:    padType,
		Name:    paddingPrefix + strconv.Itoa(p.padNum),
		Len:     uint32(n),
		Offset:  uint32(p.offset),
		IsArray: true,
		Padding: true,
	})
	p.offset += n
	p.padNum++
}
