package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the tree rooted at n as HTML. Click handlers are not
// part of the markup and are dropped. Attributes are written in name order so
// the output is stable.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTMLNode(n))
}

// HTML is RenderHTML into a string.
func HTML(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     toHTMLAttrs(n.Attributes),
	}

	// Inputs carry their content as the value, same as createElement does in the browser.
	if el.DataAtom == atom.Input {
		if n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		el.AppendChild(toHTMLNode(child))
	}
	return el
}

func toHTMLAttrs(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if _, isFunc := v.(func()); isFunc {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(attrs[k])})
	}
	return out
}
