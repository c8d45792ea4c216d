// Package showcase assembles demo pages from the layout primitives: one page per
// primitive and a themed page that exercises all of them under a token set.
package showcase

import (
	"fmt"
	"sort"
	"strings"

	p "github.com/alexisbeaulieu97/layoutkit/internal/primitives"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

const rootSelector = "#layoutkit-root"

// Fallback page colours used when the token set carries no page background or text colour.
var rootFallbacks = map[tokens.Mode][2]string{
	tokens.Light: {"#ffffff", "#111111"},
	tokens.Dark:  {"#0b1020", "#e2e8f0"},
}

func centeredBox() string {
	return p.Center(p.Box("<section><h2>Centered content</h2><p>Readable measure and gutters.</p></section>"))
}

func navBox() string {
	return p.Box(`<nav aria-label="Primary"><a href="#">Overview</a></nav>`)
}

func articleBox() string {
	return p.Box("<article><h2>Content</h2><p>Responsive side-by-side layout.</p></article>")
}

var stories = map[string]func() string{
	"stack": func() string {
		return p.Stack(p.Box("First item") + p.Box("Second item") + p.Box("Third item"))
	},
	"inline": func() string {
		return p.Inline("<button>Save</button><button>Preview</button><button>Publish</button>")
	},
	"cluster": func() string {
		return p.Cluster(p.Box("Tag 1")+p.Box("Tag 2")+p.Box("Tag 3"), p.WithStyle(tokens.ClusterJustify+": center;"))
	},
	"box": func() string {
		return p.Box("<p>Box content</p>")
	},
	"box-inverted": func() string {
		return p.Box("<p>Inverted box content</p>", p.WithClass("invert"))
	},
	"sidebar": func() string {
		return SidebarPage(DefaultSidebarArgs())
	},
	"center": centeredBox,
}

// Stories lists the available story names in sorted order.
func Stories() []string {
	names := make([]string, 0, len(stories)+1)
	for name := range stories {
		names = append(names, name)
	}
	names = append(names, "theme")
	sort.Strings(names)
	return names
}

// Story renders a single primitive demo. The "theme" story needs tokens and is served by ThemePage.
func Story(name string) (string, error) {
	render, ok := stories[name]
	if !ok {
		return "", fmt.Errorf("unknown story %q", name)
	}
	return render(), nil
}

// SidebarArgs are the knobs of the sidebar demo.
type SidebarArgs struct {
	RootWidth         string
	SidebarWidth      string
	SidebarSpace      string
	MainMinInlineSize string
	EqualHeight       bool
	SideFill          bool
	MainFill          bool
}

// DefaultSidebarArgs returns the sidebar demo defaults.
func DefaultSidebarArgs() SidebarArgs {
	return SidebarArgs{
		RootWidth:         "100%",
		SidebarWidth:      "18rem",
		SidebarSpace:      "1rem",
		MainMinInlineSize: "50%",
		EqualHeight:       true,
	}
}

func fill(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// SidebarPage renders the sidebar demo. EqualHeight forces both fill flags on.
func SidebarPage(args SidebarArgs) string {
	sideFill, mainFill := fill(args.SideFill), fill(args.MainFill)
	if args.EqualHeight {
		sideFill, mainFill = "1", "1"
	}

	style := tokens.SetOf(
		tokens.SidebarWidth, args.SidebarWidth,
		tokens.SidebarSpace, args.SidebarSpace,
		tokens.SidebarMainMinInlineSize, args.MainMinInlineSize,
		tokens.SidebarSideFill, sideFill,
		tokens.SidebarMainFill, mainFill,
	).Style()

	content := p.Sidebar(navBox(), articleBox(), p.WithStyle(style))
	return fmt.Sprintf("<style>%s{inline-size:%s;}</style>%s", rootSelector, args.RootWidth, content)
}

// ThemePage renders every primitive inside a theme wrapper carrying set as inline
// custom properties.
func ThemePage(set *tokens.Set, mode tokens.Mode, rootWidth string) string {
	showcase := p.Stack(strings.Join([]string{
		p.Box("<h3>Stack</h3><p>First item</p>"),
		p.Inline(p.Box("Inline 1") + p.Box("Inline 2") + p.Box("Inline 3")),
		p.Cluster(p.Box("Cluster A")+p.Box("Cluster B")+p.Box("Cluster C"), p.WithStyle(tokens.ClusterJustify+": center;")),
		p.Sidebar(navBox(), articleBox()),
		centeredBox(),
		p.Box("<p>Inverted box sample</p>", p.WithClass("invert")),
	}, ""), p.WithStyle(tokens.StackSpace+": var("+tokens.Space2+");"))

	themed := p.Theme(showcase,
		p.WithAttr("data-ui-theme", string(mode)),
		p.WithStyle(set.Style()),
	)

	fallback, ok := rootFallbacks[mode]
	if !ok {
		fallback = rootFallbacks[tokens.Light]
	}
	bg, ok := set.Get(tokens.BgPage)
	if !ok {
		bg = fallback[0]
	}
	text, ok := set.Get(tokens.TextDefault)
	if !ok {
		text = fallback[1]
	}

	return fmt.Sprintf(
		"<style>%s{inline-size:%s;background:%s;color:%s;padding:var(%s,1rem);box-sizing:border-box;}</style>%s",
		rootSelector, rootWidth, bg, text, tokens.Space2, themed,
	)
}

// Document wraps a fragment in a minimal standalone HTML document.
func Document(title, body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<div id=\"%s\">%s</div>\n", strings.TrimPrefix(rootSelector, "#"), body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
