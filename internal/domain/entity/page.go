package entity

type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlSelect   ControlKind = "select"
	ControlTextArea ControlKind = "textarea"
)

// Native subtypes the generator dispatches on. Anything not listed here is
// treated as generic text.
const (
	TypeText          = "text"
	TypeCheckbox      = "checkbox"
	TypeRadio         = "radio"
	TypeSelect        = "select-one"
	TypeTextArea      = "textarea"
	TypeEmail         = "email"
	TypeTel           = "tel"
	TypePhone         = "phone"
	TypeNumber        = "number"
	TypeRange         = "range"
	TypeDate          = "date"
	TypeDateTimeLocal = "datetime-local"
	TypeTime          = "time"
	TypeMonth         = "month"
	TypeWeek          = "week"
	TypeColor         = "color"
	TypePassword      = "password"
	TypeURL           = "url"
	TypeSearch        = "search"
	TypeFile          = "file"
	TypeHidden        = "hidden"
)

// Descriptive attributes read for every control. The first six feed the
// attribute bag; min and max bound numeric generation.
const (
	AttrName        = "name"
	AttrID          = "id"
	AttrPlaceholder = "placeholder"
	AttrClass       = "class"
	AttrTestID      = "data-testid"
	AttrAriaLabel   = "aria-label"
	AttrMin         = "min"
	AttrMax         = "max"
)

var DescriptiveAttributes = []string{
	AttrName,
	AttrID,
	AttrPlaceholder,
	AttrClass,
	AttrTestID,
	AttrAriaLabel,
}

var SnapshotAttributes = append(append([]string{}, DescriptiveAttributes...), AttrMin, AttrMax)

type ComputedStyle struct {
	Display    string `json:"display"`
	Visibility string `json:"visibility"`
	Opacity    string `json:"opacity"`
}

// Visible reports whether the control takes part in a fill pass.
func (s ComputedStyle) Visible() bool {
	return s.Display != "none" && s.Visibility != "hidden" && s.Opacity != "0"
}

// Focusable is the looser check used when picking the control to focus
// after a fill; opacity is ignored there.
func (s ComputedStyle) Focusable() bool {
	return s.Display != "none" && s.Visibility != "hidden"
}

type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormControl struct {
	Kind       ControlKind       `json:"kind"`
	Type       string            `json:"type"`
	Disabled   bool              `json:"disabled"`
	ReadOnly   bool              `json:"readonly"`
	Attributes map[string]string `json:"attributes"`
	Style      ComputedStyle     `json:"style"`
	Value      string            `json:"value"`
	Checked    bool              `json:"checked"`
	Options    []SelectOption    `json:"options,omitempty"`
}

func (c FormControl) Attr(name string) string {
	return c.Attributes[name]
}

func (c FormControl) IsToggle() bool {
	return c.Kind == ControlInput && (c.Type == TypeCheckbox || c.Type == TypeRadio)
}

// Label is a short human description used in logs.
func (c FormControl) Label() string {
	for _, key := range []string{AttrID, AttrName, AttrAriaLabel, AttrPlaceholder} {
		if v := c.Attributes[key]; v != "" {
			return string(c.Kind) + "[" + c.Type + "]#" + v
		}
	}
	return string(c.Kind) + "[" + c.Type + "]"
}

type EventType string

const (
	EventInput  EventType = "input"
	EventChange EventType = "change"
	EventBlur   EventType = "blur"
)

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
