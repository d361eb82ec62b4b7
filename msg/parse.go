package msg

import (
	"strings"

	"github.com/wippyai/orb/errors"
)

// Decl is one field declaration read from schema text.
type Decl struct {
	Resolved
	Name string
	Line int
}

// Parse reads schema text: one `<type>[N] <name>` declaration per line, with
// `#` starting a comment. file is only used in diagnostics.
func Parse(file string, src []byte) ([]Decl, error) {
	var decls []Decl
	seen := make(map[string]int)

	for i, line := range strings.Split(string(src), "\n") {
		lineNum := i + 1

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) < 2 {
			return nil, errors.MissingName(file, lineNum)
		}
		if len(words) > 2 {
			return nil, errors.TrailingGarbage(file, lineNum, strings.Join(words[2:], " "))
		}

		res, rerr := Resolve(words[0])
		if rerr != nil {
			rerr.File, rerr.Line = file, lineNum
			return nil, rerr
		}

		name := words[1]
		if !isIdent(name) {
			return nil, errors.InvalidName(file, lineNum, name)
		}
		if strings.HasPrefix(name, paddingPrefix) {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidName).
				At(file, lineNum).
				Detail("field name %q uses the reserved prefix %s", name, paddingPrefix).
				Value(name).
				Build()
		}
		if first, dup := seen[name]; dup {
			return nil, errors.DuplicateField(file, lineNum, name, first)
		}
		seen[name] = lineNum

		decls = append(decls, Decl{Resolved: res, Name: name, Line: lineNum})
	}

	return decls, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
