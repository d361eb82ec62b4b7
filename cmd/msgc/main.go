package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.uber.org/multierr"

	"github.com/wippyai/orb/msg"
)

func main() {
	var (
		pkg         = flag.String("pkg", "", "Package name of generated files (default: name of the schema directory)")
		out         = flag.String("o", "", "Output file (single schema only)")
		typeName    = flag.String("type", "", "Go type name (single schema only)")
		printLayout = flag.Bool("print", false, "Print layouts instead of generating code")
		check       = flag.Bool("check", false, "Verify layouts against the canonical ABI instead of generating code")
		interactive = flag.Bool("i", false, "Interactive layout inspector")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: msgc [-pkg name] [-o out.go] file.msg...")
		fmt.Fprintln(os.Stderr, "       msgc -print file.msg...")
		fmt.Fprintln(os.Stderr, "       msgc -check file.msg...")
		fmt.Fprintln(os.Stderr, "       msgc -i file.msg...  (interactive mode)")
		os.Exit(1)
	}
	if (*out != "" || *typeName != "") && len(files) > 1 {
		fmt.Fprintln(os.Stderr, "Error: -o and -type need exactly one schema")
		os.Exit(1)
	}

	layouts, err := compileAll(files)
	if err != nil {
		fail(err)
	}

	switch {
	case *interactive:
		err = runInteractive(layouts)
	case *printLayout || *check:
		if *check {
			err = checkAll(layouts)
		}
		if *printLayout {
			for _, l := range layouts {
				printTable(os.Stdout, l)
			}
		}
	default:
		err = generateAll(layouts, *pkg, *out, *typeName)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	for _, e := range multierr.Errors(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", e)
	}
	os.Exit(1)
}

// compileAll compiles every schema and reports all failures, not just the
// first.
func compileAll(files []string) ([]*msg.Layout, error) {
	var (
		layouts []*msg.Layout
		errs    error
	)
	for _, f := range files {
		l, err := msg.CompileFile(f)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		layouts = append(layouts, l)
	}
	return layouts, errs
}

func checkAll(layouts []*msg.Layout) error {
	var errs error
	for _, l := range layouts {
		if err := msg.Verify(l); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fmt.Printf("%s: ok (%d bytes)\n", l.Name, l.Size)
	}
	return errs
}

func generateAll(layouts []*msg.Layout, pkg, out, typeName string) error {
	var errs error
	for _, l := range layouts {
		p := pkg
		if p == "" {
			p = packageFor(l.File)
		}
		src, err := msg.Generate(l, msg.GenerateOptions{Package: p, TypeName: typeName})
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		dst := out
		if dst == "" {
			dst = filepath.Join(filepath.Dir(l.File), l.Name+"_msg.go")
		}
		if err := os.WriteFile(dst, src, 0o644); err != nil { //nolint:gosec // generated source is world-readable
			errs = multierr.Append(errs, fmt.Errorf("write %s: %w", dst, err))
			continue
		}
		fmt.Printf("%s -> %s\n", l.File, dst)
	}
	return errs
}

// packageFor derives a package name from the schema's directory.
func packageFor(file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "msgs"
	}
	name := msg.GoName(filepath.Base(filepath.Dir(abs)))
	if name == "" || name == "X" {
		return "msgs"
	}
	return strings.ToLower(name)
}

func printTable(w io.Writer, l *msg.Layout) {
	fmt.Fprintf(w, "%s (%s): size %d, size_no_padding %d\n", l.Name, l.File, l.Size, l.SizeNoPadding)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  OFFSET\tSIZE\tTYPE\tNAME")
	for _, f := range l.Fields {
		fmt.Fprintf(tw, "  %d\t%d\t%s\t%s\n", f.Offset, f.Size(), f.CType(), f.Name)
	}
	tw.Flush()

	fmt.Fprintf(w, "descriptor: %s\n\n", l.Descriptor())
}
