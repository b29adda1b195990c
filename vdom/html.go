package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the nodes to w as an HTML fragment.
// Text and attribute values are escaped. Attributes are written in sorted
// key order so the same tree always yields the same bytes.
func RenderHTML(w io.Writer, nodes ...*VNode) error {
	for _, n := range nodes {
		hn := toHTMLNode(n)
		if hn == nil {
			continue
		}
		if err := html.Render(w, hn); err != nil {
			return fmt.Errorf("render <%s>: %w", n.Tag, err)
		}
	}
	return nil
}

// HTML returns the serialized fragment. A malformed tree (children under a
// void element) stops rendering at that node.
func HTML(nodes ...*VNode) string {
	var sb strings.Builder
	_ = RenderHTML(&sb, nodes...)
	return sb.String()
}

func toHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		if c := toHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}

	return el
}

// htmlAttributes converts the attribute map, handling boolean attributes the
// same way the DOM builder does: true is written without a value, false is dropped.
func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		value, ok := AttributeString(attrs[k])
		if !ok {
			continue
		}
		out = append(out, html.Attribute{Key: k, Val: value})
	}
	return out
}

// AttributeString returns the string form of an attribute value and whether
// the attribute should be set at all.
func AttributeString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", val
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}
