// Package sampledata holds the candidate tables synthetic values are drawn
// from. A Set is built once and never mutated afterwards; accessors hand out
// single entries, never the backing slices.
package sampledata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Category string

const (
	Names      Category = "names"
	EmailUsers Category = "emails"
	Addresses  Category = "addresses"
	Cities     Category = "cities"
	States     Category = "states"
	Countries  Category = "countries"
	Companies  Category = "companies"
	Domains    Category = "domains"
)

var Categories = []Category{Names, EmailUsers, Addresses, Cities, States, Countries, Companies, Domains}

var ErrEmptyCategory = errors.New("sample data category is empty")

const loremText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum. Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium doloremque laudantium."

type Set struct {
	tables map[Category][]string
	words  []string
}

// File is the YAML shape accepted by LoadFile. Empty lists keep the
// built-in table.
type File struct {
	Names     []string `yaml:"names"`
	Emails    []string `yaml:"emails"`
	Addresses []string `yaml:"addresses"`
	Cities    []string `yaml:"cities"`
	States    []string `yaml:"states"`
	Countries []string `yaml:"countries"`
	Companies []string `yaml:"companies"`
	Domains   []string `yaml:"domains"`
	Text      string   `yaml:"text"`
}

var defaultSet = build(map[Category][]string{
	Names:      {"John Smith", "Jane Doe", "Michael Johnson", "Sarah Wilson", "David Brown", "Emily Davis", "Chris Taylor", "Amanda Miller"},
	EmailUsers: {"user", "test", "demo", "sample", "example", "admin", "contact"},
	Addresses:  {"123 Main St", "456 Oak Ave", "789 Pine Rd", "321 Elm Dr", "654 Maple Ln", "987 Cedar Blvd"},
	Cities:     {"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego"},
	States:     {"NY", "CA", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "MI"},
	Countries:  {"United States", "Canada", "United Kingdom", "Australia", "Germany", "France", "Japan"},
	Companies:  {"Tech Corp", "Global Industries", "Innovation Labs", "Digital Solutions", "Future Systems", "Smart Enterprises"},
	Domains:    {"example.com", "test.org", "demo.net", "sample.co", "placeholder.io"},
}, loremText, nil)

// Default returns the built-in set shared by the whole process.
func Default() *Set {
	return defaultSet
}

// New copies tables and text into a fresh Set. Categories missing from
// tables, and an empty text, fall back to the built-in set.
func New(tables map[Category][]string, text string) *Set {
	return build(tables, text, defaultSet)
}

func build(tables map[Category][]string, text string, fallback *Set) *Set {
	s := &Set{tables: make(map[Category][]string, len(Categories))}
	for _, c := range Categories {
		src := tables[c]
		if len(src) == 0 && fallback != nil {
			src = fallback.tables[c]
		}
		s.tables[c] = append([]string(nil), src...)
	}
	if strings.TrimSpace(text) == "" && fallback != nil {
		s.words = append([]string(nil), fallback.words...)
	} else {
		s.words = strings.Fields(text)
	}
	return s
}

// LoadFile builds a Set from a YAML file layered over the built-in tables.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample data: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sample data %s: %w", path, err)
	}

	return New(map[Category][]string{
		Names:      f.Names,
		EmailUsers: f.Emails,
		Addresses:  f.Addresses,
		Cities:     f.Cities,
		States:     f.States,
		Countries:  f.Countries,
		Companies:  f.Companies,
		Domains:    f.Domains,
	}, f.Text), nil
}

func (s *Set) Len(c Category) int {
	return len(s.tables[c])
}

// At returns entry i of category c.
func (s *Set) At(c Category, i int) (string, error) {
	table := s.tables[c]
	if len(table) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyCategory, c)
	}
	if i < 0 || i >= len(table) {
		return "", fmt.Errorf("index %d out of range for %s (%d entries)", i, c, len(table))
	}
	return table[i], nil
}

func (s *Set) WordCount() int {
	return len(s.words)
}

// Words returns n consecutive corpus words starting at start, wrapping
// around the end of the corpus.
func (s *Set) Words(start, n int) string {
	if len(s.words) == 0 || n <= 0 {
		return ""
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.words[(start+i)%len(s.words)]
	}
	return strings.Join(out, " ")
}
