package msg

import (
	"strconv"
	"strings"

	"github.com/wippyai/orb/errors"
)

// Type is a resolved schema base type.
type Type struct {
	Token string // schema spelling, e.g. "uint8"
	C     string // C-equivalent type used in descriptors
	Go    string // Go type used by generated structs
	Width uint32 // element size and alignment in bytes
}

var builtins = map[string]Type{
	"uint64":  {Token: "uint64", C: "uint64_t", Go: "uint64", Width: 8},
	"uint32":  {Token: "uint32", C: "uint32_t", Go: "uint32", Width: 4},
	"uint16":  {Token: "uint16", C: "uint16_t", Go: "uint16", Width: 2},
	"uint8":   {Token: "uint8", C: "uint8_t", Go: "uint8", Width: 1},
	"byte":    {Token: "byte", C: "uint8_t", Go: "uint8", Width: 1},
	"int64":   {Token: "int64", C: "int64_t", Go: "int64", Width: 8},
	"int32":   {Token: "int32", C: "int32_t", Go: "int32", Width: 4},
	"int16":   {Token: "int16", C: "int16_t", Go: "int16", Width: 2},
	"int8":    {Token: "int8", C: "int8_t", Go: "int8", Width: 1},
	"float64": {Token: "float64", C: "double", Go: "float64", Width: 8},
	"float32": {Token: "float32", C: "float", Go: "float32", Width: 4},
	"char":    {Token: "char", C: "char", Go: "byte", Width: 1},
	"bool":    {Token: "bool", C: "bool", Go: "bool", Width: 1},
}

// padType is the element type of synthetic padding fields.
var padType = builtins["uint8"]

// Lookup returns the built-in type for a schema token.
func Lookup(token string) (Type, bool) {
	t, ok := builtins[token]
	return t, ok
}

// Resolved is a schema type specification with its array arity applied.
type Resolved struct {
	Type    Type
	Len     uint32
	IsArray bool
}

// Size returns the total byte size: width times length.
func (r Resolved) Size() uint64 {
	return uint64(r.Type.Width) * uint64(r.Len)
}

// Resolve parses a type specification of the form `<type>` or `<type>[N]`.
// The returned error has no source position; callers attach one.
func Resolve(spec string) (Resolved, *errors.Error) {
	token := spec
	length := uint32(1)
	isArray := false

	if open := strings.IndexByte(spec, '['); open >= 0 {
		if !strings.HasSuffix(spec, "]") {
			return Resolved{}, errors.MissingBracket("", 0)
		}
		text := spec[open+1 : len(spec)-1]
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil || n == 0 {
			return Resolved{}, errors.InvalidArrayLength("", 0, text)
		}
		token = spec[:open]
		length = uint32(n)
		isArray = true
	}

	t, ok := Lookup(token)
	if !ok {
		return Resolved{}, errors.UnknownType("", 0, token)
	}
	return Resolved{Type: t, Len: length, IsArray: isArray}, nil
}
