package styled

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// Node represents one node of a live styled content tree. It is the sole
// inbound dependency of the segmentation engine (see package doc).
type Node interface {
	TagName() string                // lowercase element name, or "#text" for text nodes
	TextContent() string            // text from node and all descendants
	SetTextContent(text string)     // replace all content with a single text run
	InnerHTML() (string, error)     // serialized markup of the node's content
	SetInnerHTML(markup string) error
	Attr(key string) string         // attribute value or empty string
	SetAttr(key, value string)      // set or overwrite an attribute
	Attributes() []Attr             // all attributes of the node
	Style(key string) string        // inline style declaration value or empty string
	SetStyle(key, value string)     // set or overwrite an inline style declaration
	ComputedStyles() *PropertyMap   // computed CSS styles; may be nil for text nodes
	Bounds() Rect                   // bounding geometry; implies up-to-date layout
	Parent() Node                   // parent node or nil
	Children() []Node               // child nodes in document order
	AppendChild(ch Node)            // append ch as last child; detaches ch first
	InsertBefore(ch, ref Node) error // insert ch immediately before ref
	RemoveChildren()                // drop all children
	Detach()                        // isolate this node from its parent
	CreateElement(tag string) Node  // create a detached element in the same tree
}

// Attr is one attribute of a styled node.
type Attr struct {
	Key   string
	Value string
}

// HTMLBacked is an optional interface for Node implementations wrapping a
// golang.org/x/net/html node. Clients may use it to run selector matching
// against the real parse tree instead of a synthesized shim.
type HTMLBacked interface {
	HTMLNode() *html.Node
}

// Rect is a bounding box in device units. The origin is the top-left corner
// of the layout viewport, Y growing downwards.
type Rect struct {
	X, Y dimen.DU
	W, H dimen.DU
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v,%v %v×%v)", r.X, r.Y, r.W, r.H)
}

// IsVoid is true for a rect without extension, e.g. for a detached node.
func (r Rect) IsVoid() bool {
	return r.W == 0 && r.H == 0
}
