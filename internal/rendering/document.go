package rendering

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StylesheetScript is the utility-class runtime both the preview and the export load
const StylesheetScript = "https://cdn.tailwindcss.com"

// Document wraps the tree in a complete HTML page for the preview endpoint
func Document(t *Tree) (string, error) {
	if t == nil || t.Root == nil {
		return "", &RenderError{Message: "empty tree"}
	}

	head := element(atom.Head,
		element(atom.Meta, nil).withAttr("charset", "UTF-8").node,
		element(atom.Meta, nil).withAttr("name", "viewport").withAttr("content", "width=device-width, initial-scale=1.0").node,
		element(atom.Title, &html.Node{Type: html.TextNode, Data: t.Title}).node,
		element(atom.Script, nil).withAttr("src", StylesheetScript).node,
	)
	body := element(atom.Body, t.Root.htmlNode())
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, head.node, body.node).withAttr("lang", "en").node)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", &RenderError{Message: "failed to serialise preview document", Cause: err}
	}
	return buf.String(), nil
}

type builtNode struct {
	node *html.Node
}

func element(a atom.Atom, children ...*html.Node) builtNode {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return builtNode{node: n}
}

func (b builtNode) withAttr(key, val string) builtNode {
	b.node.Attr = append(b.node.Attr, html.Attribute{Key: key, Val: val})
	return b
}
