package rendering

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is one element of the live UI tree. A node with an empty Tag is a bare
// text node.
type Node struct {
	Tag      string            `json:"tag,omitempty"`
	Class    string            `json:"class,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Tree is the rendered page
type Tree struct {
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
	Root       *Node  `json:"root"`
}

func el(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

func text(tag, class, s string) *Node {
	return &Node{Tag: tag, Class: class, Text: s}
}

func (n *Node) attr(key, val string) *Node {
	if val == "" {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = val
	return n
}

func (n *Node) add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// htmlNode converts n into an x/net/html node
func (n *Node) htmlNode() *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Attr = append(out.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	if n.Text != "" {
		out.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		out.AppendChild(c.htmlNode())
	}
	return out
}

// HTML serialises the node and its subtree
func (n *Node) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.htmlNode()); err != nil {
		return "", &RenderError{Message: "failed to serialise node tree", Cause: err}
	}
	return buf.String(), nil
}

// Walk calls fn for n and every descendant in document order
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Texts returns the visible strings of the subtree in document order
func (n *Node) Texts() []string {
	var out []string
	n.Walk(func(node *Node) {
		if s := strings.TrimSpace(node.Text); s != "" {
			out = append(out, s)
		}
	})
	return out
}

// HTML serialises the tree body
func (t *Tree) HTML() (string, error) {
	if t == nil || t.Root == nil {
		return "", &RenderError{Message: "empty tree"}
	}
	return t.Root.HTML()
}
