// Package bindings renders Go source with one function per sound name.
package bindings

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"
	"strings"
	"text/template"
	"unicode"
)

// ErrNoNames is returned when there is nothing to generate.
var ErrNoNames = errors.New("no sound names to generate")

// reserved are package-level identifiers the generated package declares
// besides the bindings themselves.
var reserved = []string{"Names", "Player"}

// Binding pairs a sound name with its Go identifier.
type Binding struct {
	Name  string
	Ident string
}

var fileTemplate = template.Must(template.New("tones").Parse(`// Code generated by mactone-gen; DO NOT EDIT.

package {{.Package}}

import "context"

// Sound names.
const (
{{- range .Bindings}}
	Name{{.Ident}} = {{printf "%q" .Name}}
{{- end}}
)
{{range .Bindings}}
// {{.Ident}} plays the {{printf "%q" .Name}} sound.
func {{.Ident}}(ctx context.Context, p Player) error {
	return p.Tone(ctx, Name{{.Ident}})
}

// {{.Ident}}Trimmed plays the {{printf "%q" .Name}} sound with its trailing silence removed.
func {{.Ident}}Trimmed(ctx context.Context, p Player) error {
	return p.ToneTrimmed(ctx, Name{{.Ident}})
}
{{end}}
var names = []string{
{{- range .Bindings}}
	Name{{.Ident}},
{{- end}}
}

// Names returns the sound names bound in this package.
func Names() []string {
	return append([]string(nil), names...)
}
`))

// Generate renders a gofmt'd Go file for package pkg binding every name.
// Names are deduplicated and sorted.
func Generate(pkg string, names []string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	bindings, err := Bindings(names)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, struct {
		Package  string
		Bindings []Binding
	}{pkg, bindings})
	if err != nil {
		return nil, fmt.Errorf("failed to render bindings: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format bindings: %w", err)
	}
	return src, nil
}

// Bindings maps names to identifiers, rejecting names whose generated
// declarations would collide with each other or with the package's own.
func Bindings(names []string) ([]Binding, error) {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var out []Binding
	seen := make(map[string]string, 3*len(sorted)+len(reserved))
	for _, id := range reserved {
		seen[id] = ""
	}
	for _, name := range sorted {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ident := Ident(name)
		decls := []string{ident, ident + "Trimmed", "Name" + ident}
		for _, decl := range decls {
			prev, ok := seen[decl]
			switch {
			case ok && prev == "":
				return nil, fmt.Errorf("sound %q maps to %s, which is reserved", name, decl)
			case ok:
				return nil, fmt.Errorf("sounds %q and %q both map to %s", prev, name, decl)
			}
		}
		for _, decl := range decls {
			seen[decl] = name
		}
		out = append(out, Binding{Name: name, Ident: ident})
	}

	if len(out) == 0 {
		return nil, ErrNoNames
	}
	return out, nil
}

// Ident converts a sound name such as "dialog-error" into an exported Go
// identifier such as "DialogError".
func Ident(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	ident := b.String()
	if ident == "" || !unicode.IsLetter([]rune(ident)[0]) {
		ident = "Sound" + ident
	}
	return ident
}
