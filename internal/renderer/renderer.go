package renderer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/Akaiko1/icon-browser/internal/iconfont"
)

// Resolver finds the collection and glyph behind an icon string.
type Resolver interface {
	Resolve(iconString string) (iconfont.Collection, iconfont.Glyph, error)
}

// SnippetRenderer defines the interface for rendering usage code for an icon.
type SnippetRenderer interface {
	RenderSnippet(iconString string) (string, error)
}

// GoSnippetRenderer renders a ready-to-paste Go snippet that instantiates an icon.
type GoSnippetRenderer struct {
	resolver Resolver
}

// NewGoSnippetRenderer creates a GoSnippetRenderer backed by resolver.
func NewGoSnippetRenderer(resolver Resolver) *GoSnippetRenderer {
	return &GoSnippetRenderer{resolver: resolver}
}

// RenderSnippet renders the imports and the statements that create the icon, e.g.
//
//	import "fyne.io/fyne/v2/theme"
//
//	contentCopyIcon := theme.Icon(theme.IconNameContentCopy)
func (r *GoSnippetRenderer) RenderSnippet(iconString string) (string, error) {
	c, g, err := r.resolver.Resolve(iconString)
	if err != nil {
		return "", fmt.Errorf("failed to render snippet: %w", err)
	}

	var builder strings.Builder
	writeImports(&builder, c.Imports())
	builder.WriteString("\n")
	builder.WriteString(c.Code(g, VarName(g.Name)))

	return builder.String(), nil
}

// writeImports writes a single import line, or a block with the standard
// library group ahead of the remaining packages, as gofmt leaves it.
func writeImports(builder *strings.Builder, paths []string) {
	if len(paths) == 1 {
		fmt.Fprintf(builder, "import %q\n", paths[0])
		return
	}

	var std, other []string
	for _, p := range paths {
		first, _, _ := strings.Cut(p, "/")
		if strings.Contains(first, ".") {
			other = append(other, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(other)

	builder.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(builder, "\t%q\n", p)
	}
	if len(std) > 0 && len(other) > 0 {
		builder.WriteString("\n")
	}
	for _, p := range other {
		fmt.Fprintf(builder, "\t%q\n", p)
	}
	builder.WriteString(")\n")
}

// VarName converts a glyph name to a Go variable name: content_copy becomes contentCopyIcon.
func VarName(glyph string) string {
	parts := strings.FieldsFunc(glyph, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var builder strings.Builder
	for i, part := range parts {
		runes := []rune(part)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		builder.WriteString(string(runes))
	}

	name := builder.String()
	// Identifiers cannot start with a digit.
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return "icon" + name
	}
	return name + "Icon"
}
