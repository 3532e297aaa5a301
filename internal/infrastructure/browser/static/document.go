// Package static implements the page port over a parsed HTML snapshot.
// Values are written back into the markup so the filled document can be
// rendered, and dispatched events are recorded per control.
package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"formup/internal/application/port/output"
	"formup/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var _ output.PagePort = (*Document)(nil)

var ErrUnsupportedSource = errors.New("unsupported document source")

// Selector matching every candidate control; submit, button and reset
// inputs are removed after type normalization.
const controlSelector = "input, select, textarea"

// Input types browsers recognize. Anything else reports as text.
var inputTypes = map[string]bool{
	"text": true, "search": true, "tel": true, "url": true, "email": true,
	"password": true, "date": true, "month": true, "week": true, "time": true,
	"datetime-local": true, "number": true, "range": true, "color": true,
	"checkbox": true, "radio": true, "file": true, "submit": true,
	"image": true, "reset": true, "button": true, "hidden": true,
}

var excludedTypes = map[string]bool{
	"submit": true,
	"button": true,
	"reset":  true,
}

type Document struct {
	mu      sync.Mutex
	doc     *goquery.Document
	styles  *styleSheet
	events  map[*html.Node][]entity.EventType
	focused *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{
		doc:    doc,
		styles: computeStyles(doc),
		events: make(map[*html.Node][]entity.EventType),
	}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Open loads a document from a local path or an http(s) URL.
func Open(ctx context.Context, client *http.Client, source string) (*Document, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrUnsupportedSource)
	}

	u, err := url.Parse(source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetch(ctx, client, source)
	}
	if err == nil && u.Scheme != "" && u.Scheme != "file" && len(u.Scheme) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
	if err == nil && u.Scheme == "file" {
		source = u.Path
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func fetch(ctx context.Context, client *http.Client, source string) (*Document, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch document: unexpected status %s", resp.Status)
	}

	return Parse(resp.Body)
}

func (d *Document) Controls(ctx context.Context) ([]output.ControlPort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var controls []output.ControlPort
	d.doc.Find(controlSelector).Each(func(_ int, sel *goquery.Selection) {
		c := &Control{doc: d, sel: sel, node: sel.Get(0)}
		if c.kind() == entity.ControlInput && excludedTypes[c.inputType()] {
			return
		}
		controls = append(controls, c)
	})
	return controls, nil
}

// Events returns the events dispatched on the control matched by selector.
func (d *Document) Events(selector string) []entity.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return append([]entity.EventType(nil), d.events[sel.Get(0)]...)
}

// Focused returns the id or name of the focused control, empty when none.
func (d *Document) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.focused == nil {
		return ""
	}
	sel := goquery.NewDocumentFromNode(d.focused).Selection
	if id, ok := sel.Attr(entity.AttrID); ok && id != "" {
		return id
	}
	name, _ := sel.Attr(entity.AttrName)
	return name
}

// Find exposes the underlying document for inspection.
func (d *Document) Find(selector string) *goquery.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Find(selector)
}

func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := goquery.Render(w, d.doc.Selection); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
