package markup

import (
	"bytes"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"gridkit/theme"
)

// DocumentProps describes XHTML page wrapping rendered components.
type DocumentProps struct {
	Title      string
	Lang       string // BCP 47 tag, not checked here
	Stylesheet string // href of the stylesheet link, none when empty
}

// NewDocument creates XHTML document and returns it together with body
// element components should be added to.
func NewDocument(p DocumentProps) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	if p.Lang != "" {
		html.CreateAttr("lang", p.Lang)
		html.CreateAttr("xml:lang", p.Lang)
	}

	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	if p.Stylesheet != "" {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("type", "text/css")
		link.CreateAttr("href", p.Stylesheet)
	}

	title := head.CreateElement("title")
	title.SetText(p.Title)

	body := html.CreateElement("body")
	return doc, body
}

// Write serializes document, indent of 0 or less produces compact output.
func Write(w io.Writer, doc *etree.Document, indent int) error {
	if indent > 0 {
		doc.Indent(indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}
	return nil
}

// Fragment serializes single element without document wrapper.
func Fragment(elem *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(elem.Copy())

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("unable to serialize element: %w", err)
	}
	return buf.String(), nil
}

// CollectClasses returns class names used by element and all its
// descendants in document order.
func CollectClasses(elem *etree.Element) []string {
	var out []string
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		out = append(out, theme.Classes(e.SelectAttrValue("class", ""))...)
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(elem)
	return out
}
