package rod

import (
	"context"
	"fmt"
	"time"

	"formup/internal/application/port/output"
	"formup/internal/domain/entity"

	"github.com/go-rod/rod"
)

var _ output.ControlPort = (*rodControl)(nil)

// describeJS snapshots an element in one round trip. The shape matches
// entity.FormControl's JSON tags. Locks are read from the attributes since
// select elements have no readOnly property.
const describeJS = `function (attrs) {
	const tag = this.tagName.toLowerCase();
	const style = window.getComputedStyle(this);
	const out = {
		kind: tag,
		type: tag === 'textarea' ? 'textarea' : String(this.type || 'text').toLowerCase(),
		disabled: this.hasAttribute('disabled'),
		readonly: this.hasAttribute('readonly'),
		attributes: {},
		style: { display: style.display, visibility: style.visibility, opacity: style.opacity },
		value: this.value == null ? '' : String(this.value),
		checked: !!this.checked,
	};
	for (const name of attrs) {
		const v = this.getAttribute(name);
		if (v !== null) out.attributes[name] = v;
	}
	if (tag === 'select') {
		out.options = Array.from(this.options).map(o => ({ value: o.value, label: o.text.trim() }));
	}
	return out;
}`

const (
	setValueJS   = `function (v) { this.value = v; }`
	setCheckedJS = `function (c) { this.checked = c; }`
	dispatchJS   = `function (t) { this.dispatchEvent(new Event(t, { bubbles: true })); }`
)

type rodControl struct {
	el      *rod.Element
	timeout time.Duration
}

// element binds the element to ctx bounded by the control timeout. The
// returned cancel must be called once the operation finishes.
func (c *rodControl) element(ctx context.Context) (*rod.Element, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	return c.el.Context(ctx), cancel
}

func (c *rodControl) Describe(ctx context.Context) (entity.FormControl, error) {
	el, cancel := c.element(ctx)
	defer cancel()

	res, err := el.Eval(describeJS, entity.SnapshotAttributes)
	if err != nil {
		return entity.FormControl{}, fmt.Errorf("describe element: %w", err)
	}

	var desc entity.FormControl
	if err := res.Value.Unmarshal(&desc); err != nil {
		return entity.FormControl{}, fmt.Errorf("decode element snapshot: %w", err)
	}
	return desc, nil
}

func (c *rodControl) SetValue(ctx context.Context, value string) error {
	el, cancel := c.element(ctx)
	defer cancel()

	if _, err := el.Eval(setValueJS, value); err != nil {
		return fmt.Errorf("set value: %w", err)
	}
	return nil
}

func (c *rodControl) SetChecked(ctx context.Context, checked bool) error {
	el, cancel := c.element(ctx)
	defer cancel()

	if _, err := el.Eval(setCheckedJS, checked); err != nil {
		return fmt.Errorf("set checked: %w", err)
	}
	return nil
}

func (c *rodControl) Dispatch(ctx context.Context, event entity.EventType) error {
	el, cancel := c.element(ctx)
	defer cancel()

	if _, err := el.Eval(dispatchJS, string(event)); err != nil {
		return fmt.Errorf("dispatch %s: %w", event, err)
	}
	return nil
}

func (c *rodControl) Focus(ctx context.Context) error {
	el, cancel := c.element(ctx)
	defer cancel()

	if err := el.Focus(); err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	return nil
}
