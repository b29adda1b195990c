package vdom

import "strconv"

// TextTag marks a pure text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content, rendered before Children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Text creates a text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1-6 are clamped.
func Heading(level int, attrs map[string]any, children ...*VNode) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+strconv.Itoa(level), attrs, children, "")
}

// Anchor creates an <a href=...> VNode.
func Anchor(href string, attrs map[string]any, children ...*VNode) *VNode {
	attrs = withAttr(attrs, "href", href)
	return NewVNode("a", attrs, children, "")
}

// Image creates an <img> VNode. An empty src is kept as-is.
func Image(src, alt string, attrs map[string]any) *VNode {
	attrs = withAttr(attrs, "src", src)
	attrs["alt"] = alt
	return NewVNode("img", attrs, nil, "")
}

func withAttr(attrs map[string]any, key string, value any) map[string]any {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs[key] = value
	return attrs
}
