package msg

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/wippyai/orb/errors"
)

// RuntimeImport is the import path generated code binds to.
const RuntimeImport = "github.com/wippyai/orb/uorb"

// methodName is the method generated types implement; no field may take it.
const methodName = "Metadata"

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Package  string // Go package name of the generated file
	TypeName string // defaults to the CamelCase message name
}

type genField struct {
	Name string
	Type string
	Doc  string
}

type genData struct {
	Source        string
	Package       string
	Import        string
	Type          string
	Var           string
	Message       string
	Size          uint32
	SizeNoPadding uint32
	Descriptor    string
	Fields        []genField
}

var genTemplate = template.Must(template.New("msg").Parse(`// Code generated by msgc from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"sync"

	"{{.Import}}"
)

// {{.Type}} is the in-memory layout of the {{.Message}} message.
type {{.Type}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}{{if .Doc}} // {{.Doc}}{{end}}
{{- end}}
}

var {{.Var}} = sync.OnceValue(func() *uorb.Metadata {
	return uorb.MustMetadata[{{.Type}}](
		{{printf "%q" .Message}},
		{{.Size}},
		{{.SizeNoPadding}},
		{{printf "%q" .Descriptor}},
	)
})

// Metadata returns the descriptor of the {{.Message}} message.
func ({{.Type}}) Metadata() *uorb.Metadata { return {{.Var}}() }
`))

// Generate renders Go source declaring a struct with exactly the compiled
// layout, plus its uorb.Message implementation.
func Generate(l *Layout, opts GenerateOptions) ([]byte, error) {
	if opts.Package == "" {
		return nil, errors.InvalidInput(errors.PhaseCompile, "generate: package name required")
	}
	typeName := opts.TypeName
	if typeName == "" {
		typeName = GoName(l.Name)
	}

	data := genData{
		Source:        l.File,
		Package:       opts.Package,
		Import:        RuntimeImport,
		Type:          typeName,
		Var:           lowerFirst(typeName) + "Metadata",
		Message:       l.Name,
		Size:          l.Size,
		SizeNoPadding: l.SizeNoPadding,
		Descriptor:    l.Descriptor(),
	}
	if data.Source == "" {
		data.Source = l.Name
	}

	used := make(map[string]string)
	for _, f := range l.Fields {
		if f.Padding {
			data.Fields = append(data.Fields, genField{Name: "_", Type: f.GoType(), Doc: f.Name})
			continue
		}
		name := GoName(f.Name)
		if name == methodName {
			return nil, errors.New(errors.PhaseCompile, errors.KindInvalidName).
				At(l.File, f.Line).
				Detail("field %q maps to Go name %s, which is the message method", f.Name, name).
				Value(f.Name).
				Build()
		}
		if prev, dup := used[name]; dup {
			return nil, errors.New(errors.PhaseCompile, errors.KindDuplicateField).
				At(l.File, f.Line).
				Detail("fields %q and %q both map to Go name %s", prev, f.Name, name).
				Build()
		}
		used[name] = f.Name
		doc := ""
		if f.Type.Token == "char" {
			doc = "char"
		}
		data.Fields = append(data.Fields, genField{Name: name, Type: f.GoType(), Doc: doc})
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidInput, err, "execute template")
	}

	filename := l.Name + "_msg.go"
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidInput, err, fmt.Sprintf("format %s", filename))
	}
	return out, nil
}

// GoName converts a schema identifier to an exported Go identifier:
// debug_value -> DebugValue, array2 -> Array2. Any character outside
// [A-Za-z0-9] separates words.
func GoName(name string) string {
	var b strings.Builder
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	out := b.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		return "X" + out
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
