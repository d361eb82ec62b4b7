package msg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wippyai/orb/errors"
)

// Compile parses and lays out schema text for the named message.
func Compile(name, file string, src []byte) (*Layout, error) {
	decls, err := Parse(file, src)
	if err != nil {
		return nil, err
	}
	return Build(name, file, decls)
}

// CompileFile compiles a schema file. The message is named after the file,
// so msg/debug_value.msg yields debug_value.
func CompileFile(path string) (*Layout, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	return Compile(MessageName(path), path, src)
}

// MessageName derives a message name from a schema path.
func MessageName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
