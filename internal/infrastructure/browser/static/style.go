package static

import (
	"regexp"
	"strconv"
	"strings"

	"formup/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	propDisplay    = "display"
	propVisibility = "visibility"
	propOpacity    = "opacity"
)

var cssComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

type declaration struct {
	prop  string
	value string
}

type rule struct {
	selectors []string
	decls     []declaration
}

// styleSheet is the subset of the cascade the visibility filter needs:
// author rules from <style> blocks in document order, then inline styles.
// Specificity is not computed; later rules win.
type styleSheet struct {
	computed map[*html.Node]map[string]string
}

func computeStyles(doc *goquery.Document) *styleSheet {
	s := &styleSheet{computed: make(map[*html.Node]map[string]string)}

	doc.Find("[hidden]").Each(func(_ int, sel *goquery.Selection) {
		s.set(sel.Get(0), propDisplay, "none")
	})

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		for _, r := range parseRules(sel.Text()) {
			for _, selector := range r.selectors {
				doc.Find(selector).Each(func(_ int, target *goquery.Selection) {
					for _, d := range r.decls {
						s.set(target.Get(0), d.prop, d.value)
					}
				})
			}
		}
	})

	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		inline, _ := sel.Attr("style")
		for _, d := range parseDeclarations(inline) {
			s.set(sel.Get(0), d.prop, d.value)
		}
	})

	return s
}

func (s *styleSheet) set(n *html.Node, prop, value string) {
	switch prop {
	case propDisplay, propVisibility, propOpacity:
	default:
		return
	}
	props, ok := s.computed[n]
	if !ok {
		props = make(map[string]string)
		s.computed[n] = props
	}
	props[prop] = value
}

func (s *styleSheet) own(n *html.Node, prop string) (string, bool) {
	v, ok := s.computed[n][prop]
	return v, ok
}

// Style resolves the computed display, visibility and opacity of a control.
// Visibility inherits from ancestors; display and opacity do not.
func (s *styleSheet) Style(n *html.Node, typ string) entity.ComputedStyle {
	style := entity.ComputedStyle{
		Display:    "inline-block",
		Visibility: "visible",
		Opacity:    "1",
	}
	if typ == entity.TypeHidden {
		style.Display = "none"
	}

	if v, ok := s.own(n, propDisplay); ok {
		style.Display = v
	}
	if v, ok := s.own(n, propOpacity); ok {
		style.Opacity = normalizeOpacity(v)
	}

	for p := n; p != nil; p = p.Parent {
		if v, ok := s.own(p, propVisibility); ok && v != "inherit" {
			style.Visibility = v
			break
		}
	}
	if style.Visibility == "collapse" {
		style.Visibility = "hidden"
	}

	return style
}

func parseRules(css string) []rule {
	css = cssComment.ReplaceAllString(css, "")

	var rules []rule
	for _, block := range strings.Split(css, "}") {
		head, body, ok := strings.Cut(block, "{")
		if !ok {
			continue
		}
		head = strings.TrimSpace(head)
		// At-rules (@media, @font-face) are not evaluated.
		if head == "" || strings.HasPrefix(head, "@") {
			continue
		}

		var selectors []string
		for _, sel := range strings.Split(head, ",") {
			if sel = strings.TrimSpace(sel); sel != "" {
				selectors = append(selectors, sel)
			}
		}

		rules = append(rules, rule{
			selectors: selectors,
			decls:     parseDeclarations(body),
		})
	}
	return rules
}

func parseDeclarations(body string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(body, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		value = strings.ToLower(strings.TrimSpace(value))
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: value})
	}
	return decls
}

// normalizeOpacity mirrors how browsers serialize computed opacity:
// clamped to [0,1], percentages resolved, shortest decimal form.
func normalizeOpacity(v string) string {
	scale := 1.0
	if strings.HasSuffix(v, "%") {
		v = strings.TrimSuffix(v, "%")
		scale = 100
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "1"
	}
	f /= scale
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
