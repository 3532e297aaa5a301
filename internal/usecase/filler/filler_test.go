package filler

import (
	"context"
	"errors"
	"testing"
	"time"

	"formup/internal/domain/entity"
	"formup/internal/infrastructure/logger"
	"formup/internal/usecase/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeControl struct {
	desc       entity.FormControl
	value      string
	checked    bool
	events     []entity.EventType
	setErr     error
	panicOnSet bool
}

func (c *fakeControl) Describe(ctx context.Context) (entity.FormControl, error) {
	d := c.desc
	d.Value = c.value
	d.Checked = c.checked
	return d, nil
}

func fill(t *testing.T, f *Filler, c *fakeControl) entity.FieldResult {
	t.Helper()
	desc, err := c.Describe(context.Background())
	require.NoError(t, err)
	return f.Fill(context.Background(), c, desc)
}

func (c *fakeControl) SetValue(ctx context.Context, value string) error {
	if c.panicOnSet {
		panic("detached node")
	}
	if c.setErr != nil {
		return c.setErr
	}
	c.value = value
	return nil
}

func (c *fakeControl) SetChecked(ctx context.Context, checked bool) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.checked = checked
	return nil
}

func (c *fakeControl) Dispatch(ctx context.Context, event entity.EventType) error {
	c.events = append(c.events, event)
	return nil
}

func (c *fakeControl) Focus(ctx context.Context) error {
	return nil
}

func newTestFiller() *Filler {
	gen := generator.New(
		generator.WithRandom(generator.NewSeeded(42)),
		generator.WithClock(func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }),
	)
	return New(gen, logger.NewNop())
}

func TestFill_TextLike(t *testing.T) {
	f := newTestFiller()

	tests := []struct {
		name    string
		desc    entity.FormControl
		pattern string
		intent  entity.IntentTag
	}{
		{
			name:    "Email input",
			desc:    entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeEmail},
			pattern: `@`,
			intent:  entity.IntentDefault,
		},
		{
			name:    "Text by intent",
			desc:    entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeText, Attributes: map[string]string{entity.AttrName: "city"}},
			pattern: `^[A-Z]`,
			intent:  entity.IntentCity,
		},
		{
			name:    "Textarea",
			desc:    entity.FormControl{Kind: entity.ControlTextArea, Type: entity.TypeTextArea, Attributes: map[string]string{entity.AttrID: "comments"}},
			pattern: `\w+`,
			intent:  entity.IntentLongText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeControl{desc: tt.desc}

			res := fill(t, f, c)

			require.Equal(t, entity.FieldFilled, res.Status)
			assert.NoError(t, res.Err)
			assert.Equal(t, tt.intent, res.Intent)
			assert.Regexp(t, tt.pattern, c.value)
			assert.Equal(t, c.value, res.Value)
			assert.Equal(t, []entity.EventType{entity.EventInput, entity.EventChange, entity.EventBlur}, c.events)
		})
	}
}

func TestFill_Toggle(t *testing.T) {
	f := newTestFiller()

	for _, typ := range []string{entity.TypeCheckbox, entity.TypeRadio} {
		t.Run(typ, func(t *testing.T) {
			c := &fakeControl{desc: entity.FormControl{Kind: entity.ControlInput, Type: typ}}

			res := fill(t, f, c)

			require.Equal(t, entity.FieldFilled, res.Status)
			assert.Equal(t, []entity.EventType{entity.EventChange}, c.events)
			assert.Equal(t, "", c.value)
			assert.Equal(t, entity.IntentTag(""), res.Intent, "toggles are not classified")
		})
	}
}

func TestFill_Select(t *testing.T) {
	f := newTestFiller()

	t.Run("Single option", func(t *testing.T) {
		c := &fakeControl{desc: entity.FormControl{
			Kind:    entity.ControlSelect,
			Type:    entity.TypeSelect,
			Options: []entity.SelectOption{{Value: "", Label: "--"}, {Value: "de", Label: "Germany"}},
		}}

		res := fill(t, f, c)

		require.Equal(t, entity.FieldFilled, res.Status)
		assert.Equal(t, "de", c.value)
		assert.Equal(t, []entity.EventType{entity.EventChange}, c.events)
	})

	t.Run("No selectable option", func(t *testing.T) {
		c := &fakeControl{
			value: "",
			desc: entity.FormControl{
				Kind:    entity.ControlSelect,
				Type:    entity.TypeSelect,
				Options: []entity.SelectOption{{Value: "", Label: "--"}},
			},
		}

		res := fill(t, f, c)

		assert.Equal(t, entity.FieldNoOptions, res.Status)
		assert.Equal(t, "", c.value)
		assert.Empty(t, c.events)
	})
}

func TestFill_DisabledOrReadOnly(t *testing.T) {
	f := newTestFiller()

	tests := []struct {
		name string
		desc entity.FormControl
	}{
		{"Disabled text", entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeText, Disabled: true}},
		{"Readonly email", entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeEmail, ReadOnly: true}},
		{"Disabled checkbox", entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeCheckbox, Disabled: true}},
		{"Disabled select", entity.FormControl{Kind: entity.ControlSelect, Type: entity.TypeSelect, Disabled: true, Options: []entity.SelectOption{{Value: "x"}}}},
		{"Readonly textarea", entity.FormControl{Kind: entity.ControlTextArea, Type: entity.TypeTextArea, ReadOnly: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeControl{desc: tt.desc, value: "original", checked: true}

			res := fill(t, f, c)

			assert.Equal(t, entity.FieldLocked, res.Status)
			assert.Equal(t, "original", c.value)
			assert.True(t, c.checked)
			assert.Empty(t, c.events)
		})
	}
}

func TestFill_SkippedTypes(t *testing.T) {
	f := newTestFiller()

	for _, typ := range []string{entity.TypeFile, entity.TypeHidden} {
		c := &fakeControl{desc: entity.FormControl{Kind: entity.ControlInput, Type: typ}}

		res := fill(t, f, c)

		assert.Equal(t, entity.FieldUnsupported, res.Status, typ)
		assert.Empty(t, c.events, typ)
		assert.Empty(t, c.value, typ)
	}
}

func TestFill_FailuresAreContained(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	gen := generator.New(generator.WithRandom(generator.NewSeeded(1)))
	f := New(gen, logger.NewWithCore(core))

	boom := errors.New("element detached")

	tests := []struct {
		name    string
		control *fakeControl
	}{
		{"Set error", &fakeControl{setErr: boom, desc: entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeText}}},
		{"Panic", &fakeControl{panicOnSet: true, desc: entity.FormControl{Kind: entity.ControlInput, Type: entity.TypeText}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res entity.FieldResult
			require.NotPanics(t, func() { res = fill(t, f, tt.control) })

			assert.Equal(t, entity.FieldFailed, res.Status)
			assert.Error(t, res.Err)
			assert.Empty(t, tt.control.events)
		})
	}

	assert.Equal(t, 2, logs.FilterMessage("Error filling field").Len())
}
