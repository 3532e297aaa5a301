// Package generator produces synthetic values for form controls. Dispatch is
// by native subtype first; only generic text-like inputs fall back to the
// intent inferred from their attributes.
package generator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"formup/internal/domain/entity"
	"formup/internal/domain/sampledata"
)

const (
	checkedProbability = 0.6
	fixedPassword      = "Password123!"
	lastNameFallback   = "Smith"
	defaultNumberMin   = "0"
	defaultNumberMax   = "100"
	dateYearsBack      = 30
	birthdateYearsBack = 50
)

var (
	// ErrSkipped marks control types that are never filled (file, hidden).
	ErrSkipped = errors.New("control type is not filled")
	// ErrNoOptions marks a select without any option carrying a value.
	ErrNoOptions = errors.New("select has no option with a value")
)

type Generator struct {
	data *sampledata.Set
	rnd  Random
	now  Clock
}

type Option func(*Generator)

func WithSampleData(s *sampledata.Set) Option {
	return func(g *Generator) {
		if s != nil {
			g.data = s
		}
	}
}

func WithRandom(r Random) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.now = c
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		data: sampledata.Default(),
		rnd:  globalRandom{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the value to commit to c. intent is only consulted for
// input types without a dedicated rule.
func (g *Generator) Generate(c entity.FormControl, intent entity.IntentTag) (entity.GeneratedValue, error) {
	if c.Kind == entity.ControlSelect {
		return g.selectOption(c.Options)
	}
	if c.IsToggle() {
		return entity.BoolValue(g.rnd.Float64() < checkedProbability), nil
	}

	text, err := g.byType(c, intent)
	if err != nil {
		return entity.GeneratedValue{}, err
	}
	return entity.TextValue(text), nil
}

func (g *Generator) byType(c entity.FormControl, intent entity.IntentTag) (string, error) {
	switch c.Type {
	case entity.TypeEmail:
		return g.Email()
	case entity.TypeTel, entity.TypePhone:
		return g.Phone(), nil
	case entity.TypeNumber, entity.TypeRange:
		return g.Number(c.Attr(entity.AttrMin), c.Attr(entity.AttrMax)), nil
	case entity.TypeDate:
		return g.Date(dateYearsBack), nil
	case entity.TypeDateTimeLocal:
		return g.Date(dateYearsBack) + "T" + g.Time(), nil
	case entity.TypeTime:
		return g.Time(), nil
	case entity.TypeMonth:
		return fmt.Sprintf("%d-%02d", g.now().Year(), g.rnd.IntN(12)+1), nil
	case entity.TypeWeek:
		return fmt.Sprintf("%d-W%02d", g.now().Year(), g.rnd.IntN(52)+1), nil
	case entity.TypeColor:
		return fmt.Sprintf("#%06x", g.rnd.IntN(0x1000000)), nil
	case entity.TypePassword:
		return fixedPassword, nil
	case entity.TypeURL:
		return g.URL()
	case entity.TypeSearch:
		return g.Text(1, 3), nil
	case entity.TypeTextArea:
		return g.Text(10, 50), nil
	case entity.TypeFile, entity.TypeHidden:
		return "", fmt.Errorf("%w: %s", ErrSkipped, c.Type)
	}
	return g.ByIntent(intent)
}

// ByIntent generates a value for a generic text input.
func (g *Generator) ByIntent(intent entity.IntentTag) (string, error) {
	switch intent {
	case entity.IntentEmail:
		return g.Email()
	case entity.IntentPhone:
		return g.Phone(), nil
	case entity.IntentName:
		return g.pick(sampledata.Names)
	case entity.IntentFirstName:
		name, err := g.pick(sampledata.Names)
		if err != nil {
			return "", err
		}
		if parts := strings.Fields(name); len(parts) > 0 {
			return parts[0], nil
		}
		return name, nil
	case entity.IntentLastName:
		name, err := g.pick(sampledata.Names)
		if err != nil {
			return "", err
		}
		if parts := strings.Fields(name); len(parts) > 1 {
			return parts[1], nil
		}
		return lastNameFallback, nil
	case entity.IntentAddress:
		return g.pick(sampledata.Addresses)
	case entity.IntentCity:
		return g.pick(sampledata.Cities)
	case entity.IntentState:
		return g.pick(sampledata.States)
	case entity.IntentZip:
		return strconv.Itoa(g.between(10000, 99999)), nil
	case entity.IntentCountry:
		return g.pick(sampledata.Countries)
	case entity.IntentCompany:
		return g.pick(sampledata.Companies)
	case entity.IntentAge:
		return strconv.Itoa(g.between(18, 67)), nil
	case entity.IntentBirthdate:
		return g.Date(birthdateYearsBack), nil
	case entity.IntentURL:
		return g.URL()
	case entity.IntentLongText:
		return g.Text(15, 100), nil
	}
	return g.Text(3, 10), nil
}

func (g *Generator) Email() (string, error) {
	user, err := g.pick(sampledata.EmailUsers)
	if err != nil {
		return "", err
	}
	domain, err := g.pick(sampledata.Domains)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d@%s", user, g.rnd.IntN(1000), domain), nil
}

func (g *Generator) Phone() string {
	return fmt.Sprintf("(%d) %d-%d", g.between(100, 999), g.between(100, 999), g.between(1000, 9999))
}

// Number returns an integer in [min, max]. Missing bounds default to 0 and
// 100. A bound without leading digits yields "NaN" rather than a default.
func (g *Generator) Number(minAttr, maxAttr string) string {
	if minAttr == "" {
		minAttr = defaultNumberMin
	}
	if maxAttr == "" {
		maxAttr = defaultNumberMax
	}
	lo := parseLeadingInt(minAttr)
	hi := parseLeadingInt(maxAttr)

	v := math.Floor(g.rnd.Float64()*(hi-lo+1)) + lo
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Date returns a day between January 1st, yearsBack years ago, and now.
func (g *Generator) Date(yearsBack int) string {
	now := g.now()
	start := time.Date(now.Year()-yearsBack, time.January, 1, 0, 0, 0, 0, now.Location())
	offset := time.Duration(g.rnd.Float64() * float64(now.Sub(start)))
	return start.Add(offset).Format(time.DateOnly)
}

func (g *Generator) Time() string {
	return fmt.Sprintf("%02d:%02d", g.rnd.IntN(24), g.rnd.IntN(60))
}

func (g *Generator) URL() (string, error) {
	domain, err := g.pick(sampledata.Domains)
	if err != nil {
		return "", err
	}
	return "https://www." + domain, nil
}

// Text returns between minWords and maxWords consecutive corpus words.
func (g *Generator) Text(minWords, maxWords int) string {
	count := g.between(minWords, maxWords)
	if g.data.WordCount() == 0 {
		return ""
	}
	return g.data.Words(g.rnd.IntN(g.data.WordCount()), count)
}

func (g *Generator) selectOption(options []entity.SelectOption) (entity.GeneratedValue, error) {
	candidates := make([]entity.SelectOption, 0, len(options))
	for _, o := range options {
		if o.Value != "" {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return entity.GeneratedValue{}, ErrNoOptions
	}
	return entity.TextValue(candidates[g.rnd.IntN(len(candidates))].Value), nil
}

func (g *Generator) pick(c sampledata.Category) (string, error) {
	n := g.data.Len(c)
	if n == 0 {
		return "", fmt.Errorf("%w: %s", sampledata.ErrEmptyCategory, c)
	}
	return g.data.At(c, g.rnd.IntN(n))
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}
