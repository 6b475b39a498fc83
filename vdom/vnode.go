package vdom

import (
	"fmt"
	"strings"
)

// VNode represents a virtual DOM node.
// A node with an empty Tag is a bare text node carrying only Content.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The content of the node
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// IsText reports whether v is a bare text node.
func (v *VNode) IsText() bool {
	return v.Tag == ""
}

// TextContent returns the node's own Content followed by the text content of
// its children, depth first, the way the DOM's textContent reads it.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if len(v.Children) == 0 {
		return v.Content
	}
	var sb strings.Builder
	v.writeText(&sb)
	return sb.String()
}

func (v *VNode) writeText(sb *strings.Builder) {
	if v == nil {
		return
	}
	sb.WriteString(v.Content)
	for _, child := range v.Children {
		child.writeText(sb)
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Content: content}
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Equal reports whether a and b would produce the same markup. Click
// handlers are compared by presence only since funcs are not comparable.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Content != b.Content || (a.OnClick == nil) != (b.OnClick == nil) {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, av := range a.Attributes {
		bv, ok := b.Attributes[k]
		if !ok || fmt.Sprint(av) != fmt.Sprint(bv) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
