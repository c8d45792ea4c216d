// Package primitives renders the layout primitives as HTML fragments.
//
// Each primitive wraps already-rendered markup in a <div> whose class names the
// primitive (ui-stack, ui-inline, ...). The accompanying stylesheet reads its spacing
// and colours from CSS custom properties, so callers tune a primitive by passing a
// style attribute rather than extra classes:
//
//	html := primitives.Cluster(tags, primitives.WithAttr("style", "--ui-cluster-justify: center;"))
//
// Content is inserted verbatim; attribute values are HTML-escaped.
package primitives

import (
	"html"
	"strings"
)

// Class names emitted by the primitives.
const (
	ClassStack   = "ui-stack"
	ClassInline  = "ui-inline"
	ClassCluster = "ui-cluster"
	ClassCenter  = "ui-center"
	ClassSidebar = "ui-sidebar"
	ClassBox     = "ui-box"
	ClassTheme   = "ui-theme"
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Options customises a primitive's wrapper element.
type Options struct {
	ClassName string
	Attrs     []Attr
}

// Option mutates Options.
type Option func(*Options)

// WithClass prepends an extra class name to the primitive's own class.
func WithClass(name string) Option {
	return func(o *Options) {
		o.ClassName = name
	}
}

// WithAttr appends an attribute. Attributes render in the order they are added.
func WithAttr(name, value string) Option {
	return func(o *Options) {
		o.Attrs = append(o.Attrs, Attr{Name: name, Value: value})
	}
}

// WithStyle is shorthand for WithAttr("style", css).
func WithStyle(css string) Option {
	return WithAttr("style", css)
}

// Stack arranges children vertically with uniform spacing.
func Stack(content string, opts ...Option) string {
	return wrap(ClassStack, content, opts)
}

// Inline arranges children in a single row.
func Inline(content string, opts ...Option) string {
	return wrap(ClassInline, content, opts)
}

// Cluster arranges children in a wrapping row.
func Cluster(content string, opts ...Option) string {
	return wrap(ClassCluster, content, opts)
}

// Center constrains content to a readable measure with gutters.
func Center(content string, opts ...Option) string {
	return wrap(ClassCenter, content, opts)
}

// Box pads content and paints it with the box colours. The "invert" class swaps them.
func Box(content string, opts ...Option) string {
	return wrap(ClassBox, content, opts)
}

// Theme scopes a token set to its content; pass the tokens as a style attribute.
func Theme(content string, opts ...Option) string {
	return wrap(ClassTheme, content, opts)
}

// Sidebar places side next to main, wrapping below a minimum inline size.
func Sidebar(side, main string, opts ...Option) string {
	return wrap(ClassSidebar, "<aside>"+side+"</aside><main>"+main+"</main>", opts)
}

func wrap(class, content string, opts []Option) string {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="`)
	if o.ClassName != "" {
		b.WriteString(html.EscapeString(o.ClassName))
		b.WriteByte(' ')
	}
	b.WriteString(class)
	b.WriteByte('"')
	for _, a := range o.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(content)
	b.WriteString("</div>")
	return b.String()
}
