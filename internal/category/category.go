// Package category is the single registry for the nine surrounding-facility
// categories: classification rules, subtype labeling, marker styles, and
// Overpass query templates all live here so downstream consumers (pipeline,
// export, serve) iterate the registry instead of hard-coding the set.
package category

import (
	"slices"
	"strings"
)

// Key identifies a facility category.
type Key string

// The closed category set. Adding a category means adding one registry
// entry below; every consumer iterates All().
const (
	Residential      Key = "residential"
	Education        Key = "education"
	PublicArea       Key = "public_area"
	Culinary         Key = "culinary"
	BusinessCenter   Key = "business_center"
	Groceries        Key = "groceries"
	ConvenientStores Key = "convenient_stores"
	Industrial       Key = "industrial"
	HospitalClinic   Key = "hospital_clinic"
)

// TagRule matches an OSM tag. An empty Values slice is a key-presence
// check; otherwise the tag value must equal one of Values.
type TagRule struct {
	Key    string
	Values []string
}

// MarkerStyle carries the display style used by map and legend consumers.
type MarkerStyle struct {
	Color string
	Icon  string
}

// Category is one registry entry.
type Category struct {
	Key             Key
	Display         string
	TagRules        []TagRule
	Keywords        []string // case-insensitive substrings of the feature name, Indonesian + English
	Marker          MarkerStyle
	FallbackSubtype string
	subtypes        []subtypeRule
}

// Matches reports whether a feature with the given tag bag and display
// name belongs to this category. Tag rules and name keywords form one
// disjunction; categories are independent and not mutually exclusive.
func (c Category) Matches(tags map[string]string, name string) bool {
	for _, r := range c.TagRules {
		v, ok := tags[r.Key]
		if !ok {
			continue
		}
		if len(r.Values) == 0 || slices.Contains(r.Values, v) {
			return true
		}
	}
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, kw := range c.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify evaluates every category against a feature and returns the
// presence vector. Evaluation order of categories never affects the
// outcome; the function is pure.
func Classify(tags map[string]string, name string) map[Key]bool {
	out := make(map[Key]bool, len(registry))
	for _, c := range registry {
		out[c.Key] = c.Matches(tags, name)
	}
	return out
}

// All returns the registry in its fixed display order.
func All() []Category {
	return registry
}

// Keys returns the category keys in registry order.
func Keys() []Key {
	keys := make([]Key, len(registry))
	for i, c := range registry {
		keys[i] = c.Key
	}
	return keys
}

// ByKey looks up a registry entry.
func ByKey(k Key) (Category, bool) {
	for _, c := range registry {
		if c.Key == k {
			return c, true
		}
	}
	return Category{}, false
}

// Displays returns the human-readable column names in registry order.
func Displays() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = c.Display
	}
	return out
}
