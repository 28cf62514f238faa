// Package richtext sanitizes the restricted HTML subset a note's content may
// carry. Elements outside the allow-list are unwrapped into their children;
// attributes other than style are stripped.
package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var allowedTags = map[string]bool{
	"b": true, "strong": true, "i": true, "em": true, "u": true,
	"ul": true, "ol": true, "li": true, "p": true, "br": true,
	"div": true, "span": true,
}

var allowedAttrs = map[string]bool{
	"style": true,
}

// Sanitize returns content with disallowed elements unwrapped and
// disallowed attributes removed. Input that fails to parse comes back
// unchanged in text form, since the parser is lenient by design.
func Sanitize(content string) string {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(content), root)
	if err != nil {
		return html.EscapeString(Text(content))
	}

	var out strings.Builder
	for _, n := range nodes {
		renderClean(&out, n)
	}
	return out.String()
}

func renderClean(out *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		out.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
		if !allowedTags[n.Data] {
			// Unwrap: keep the children, drop the element itself.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				renderClean(out, c)
			}
			return
		}

		out.WriteString("<" + n.Data)
		for _, attr := range n.Attr {
			if allowedAttrs[strings.ToLower(attr.Key)] {
				out.WriteString(` ` + attr.Key + `="` + html.EscapeString(attr.Val) + `"`)
			}
		}
		if n.Data == "br" {
			out.WriteString("/>")
			return
		}
		out.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderClean(out, c)
		}
		out.WriteString("</" + n.Data + ">")
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderClean(out, c)
		}
	}
}

// Text strips all markup and returns the plain text, used for search
// previews and list rows.
func Text(content string) string {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(content), root)
	if err != nil {
		return content
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out.String()
}
