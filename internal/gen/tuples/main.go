// Command tuples generates the fixed-arity tuple types of package
// introspectable.
//
//	go run ./internal/gen/tuples -n 16 -o tuple_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const fileTemplate = `// Code generated by internal/gen/tuples; DO NOT EDIT.

package {{.Package}}

import (
	"reflect"

	"github.com/Peperworx/introspectable/info"
)
{{range .Tuples}}
// {{.Name}} is a tuple of {{.Arity}} {{if eq .Arity 1}}value{{else}}values{{end}}.
type {{.Name}}[{{.Params}} any] struct {
{{- range .Slots}}
	V{{.Index}} T{{.Index}}
{{- end}}
}

// New{{.Name}} returns a {{.Name}} holding the given values.
func New{{.Name}}[{{.Params}} any]({{.Args}}) {{.Inst}} {
	return {{.Inst}}{ {{- .Init -}} }
}

func ({{.Inst}}) TypeArgs() []reflect.Type {
	return []reflect.Type{ {{- .TypeFors -}} }
}

func ({{.Inst}}) Compose(args []info.Descriptor) info.Descriptor { return composeTuple(args) }

func (t {{.Inst}}) Introspect() info.Descriptor { return Assemble(t) }
{{end}}`

type slot struct {
	Index int
}

type tuple struct {
	Name  string
	Arity int
	Slots []slot
}

func (t tuple) join(f func(i int) string) string {
	parts := make([]string, len(t.Slots))
	for i := range t.Slots {
		parts[i] = f(i)
	}
	return strings.Join(parts, ", ")
}

func (t tuple) Params() string {
	return t.join(func(i int) string { return fmt.Sprintf("T%d", i) })
}

func (t tuple) Inst() string {
	return t.Name + "[" + t.Params() + "]"
}

func (t tuple) Args() string {
	return t.join(func(i int) string { return fmt.Sprintf("v%d T%d", i, i) })
}

func (t tuple) Init() string {
	return t.join(func(i int) string { return fmt.Sprintf("V%d: v%d", i, i) })
}

func (t tuple) TypeFors() string {
	return t.join(func(i int) string { return fmt.Sprintf("reflect.TypeFor[T%d]()", i) })
}

func generate(pkg string, n int) ([]byte, error) {
	data := struct {
		Package string
		Tuples  []tuple
	}{Package: pkg}

	for arity := 1; arity <= n; arity++ {
		t := tuple{Name: fmt.Sprintf("Tuple%d", arity), Arity: arity}
		for i := 0; i < arity; i++ {
			t.Slots = append(t.Slots, slot{Index: i})
		}
		data.Tuples = append(data.Tuples, t)
	}

	tmpl, err := template.New("tuples").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

func main() {
	n := flag.Int("n", 16, "largest tuple arity")
	out := flag.String("o", "tuple_gen.go", "output file")
	pkg := flag.String("pkg", "introspectable", "package name")
	flag.Parse()

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "tuples: -n must be at least 1")
		os.Exit(2)
	}

	src, err := generate(*pkg, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuples: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tuples: %v\n", err)
		os.Exit(1)
	}
}
