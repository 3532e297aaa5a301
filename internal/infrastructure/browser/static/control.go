package static

import (
	"context"
	"strings"

	"formup/internal/application/port/output"
	"formup/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var _ output.ControlPort = (*Control)(nil)

type Control struct {
	doc  *Document
	sel  *goquery.Selection
	node *html.Node
}

func (c *Control) kind() entity.ControlKind {
	switch c.node.Data {
	case "select":
		return entity.ControlSelect
	case "textarea":
		return entity.ControlTextArea
	}
	return entity.ControlInput
}

func (c *Control) inputType() string {
	t := strings.ToLower(strings.TrimSpace(c.sel.AttrOr("type", "")))
	if !inputTypes[t] {
		return entity.TypeText
	}
	return t
}

func (c *Control) typ() string {
	switch c.kind() {
	case entity.ControlSelect:
		if _, multiple := c.sel.Attr("multiple"); multiple {
			return "select-multiple"
		}
		return entity.TypeSelect
	case entity.ControlTextArea:
		return entity.TypeTextArea
	}
	return c.inputType()
}

func (c *Control) Describe(ctx context.Context) (entity.FormControl, error) {
	if err := ctx.Err(); err != nil {
		return entity.FormControl{}, err
	}

	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	kind := c.kind()
	typ := c.typ()

	_, disabled := c.sel.Attr("disabled")
	_, readonly := c.sel.Attr("readonly")

	attrs := make(map[string]string, len(entity.SnapshotAttributes))
	for _, key := range entity.SnapshotAttributes {
		if v, ok := c.sel.Attr(key); ok {
			attrs[key] = v
		}
	}

	desc := entity.FormControl{
		Kind:       kind,
		Type:       typ,
		Disabled:   disabled,
		ReadOnly:   readonly,
		Attributes: attrs,
		Style:      c.doc.styles.Style(c.node, typ),
	}

	switch kind {
	case entity.ControlSelect:
		desc.Options = c.options()
		desc.Value = c.selectedValue()
	case entity.ControlTextArea:
		desc.Value = c.sel.Text()
	default:
		desc.Value = c.sel.AttrOr("value", "")
		_, desc.Checked = c.sel.Attr("checked")
	}

	return desc, nil
}

func optionValue(opt *goquery.Selection) string {
	if v, ok := opt.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(opt.Text())
}

func (c *Control) options() []entity.SelectOption {
	var opts []entity.SelectOption
	c.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		opts = append(opts, entity.SelectOption{
			Value: optionValue(opt),
			Label: strings.TrimSpace(opt.Text()),
		})
	})
	return opts
}

func (c *Control) selectedValue() string {
	opts := c.sel.Find("option")
	if sel := opts.Filter("[selected]").Last(); sel.Length() > 0 {
		return optionValue(sel)
	}
	if first := opts.First(); first.Length() > 0 {
		return optionValue(first)
	}
	return ""
}

func (c *Control) SetValue(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	switch c.kind() {
	case entity.ControlSelect:
		c.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
			opt.RemoveAttr("selected")
		})
		c.sel.Find("option").EachWithBreak(func(_ int, opt *goquery.Selection) bool {
			if optionValue(opt) == value {
				opt.SetAttr("selected", "")
				return false
			}
			return true
		})
	case entity.ControlTextArea:
		c.sel.SetText(value)
	default:
		c.sel.SetAttr("value", value)
	}
	return nil
}

func (c *Control) SetChecked(ctx context.Context, checked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	if !checked {
		c.sel.RemoveAttr("checked")
		return nil
	}

	// Checking a radio unchecks the rest of its group.
	if name := c.sel.AttrOr(entity.AttrName, ""); c.inputType() == entity.TypeRadio && name != "" {
		c.doc.doc.Find("input").Each(func(_ int, other *goquery.Selection) {
			if other.Get(0) == c.node || other.AttrOr(entity.AttrName, "") != name {
				return
			}
			if strings.EqualFold(other.AttrOr("type", ""), entity.TypeRadio) {
				other.RemoveAttr("checked")
			}
		})
	}
	c.sel.SetAttr("checked", "")
	return nil
}

func (c *Control) Dispatch(ctx context.Context, event entity.EventType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	c.doc.events[c.node] = append(c.doc.events[c.node], event)
	return nil
}

func (c *Control) Focus(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	c.doc.focused = c.node
	return nil
}
