// Package messages holds the warning-message templates shown for failed
// rules and renders them with rule parameters.
//
// Templates contain positional placeholders ({0}, {1}, ...) filled from the
// comma-separated parameter block of the failing clause:
//
//	messages.Format("Please enter a value between {0} and {1}.", rules.With("1,10"))
//	// Please enter a value between 1 and 10.
//
// A Catalog is keyed by rule name, by field name (a per-field override that
// wins over the rule message) and by BaseKey, the fallback used when nothing
// more specific exists.
package messages

import (
	"maps"
	"strconv"
	"strings"

	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

// BaseKey is the catalog key of the generic fallback message.
const BaseKey = "base"

var defaults = map[string]string{
	BaseKey:        "Sorry, but there is a problem with this field.",
	"required":     "Sorry, but this field is required.",
	"alphanumeric": "Sorry, but this field may only contain letters and numbers.",
	"alphabetic":   "Sorry, but this field may only contain letters.",
	"numeric":      "Sorry, but this field may only contain numbers.",
	"email":        "Please enter a valid email address (ex. 'mailbox@example.com').",
	"zip":          "Please enter a valid ZIP code (ex. '60614').",
	"state_usa":    "Please enter a valid state abbreviation (ex. 'IL').",
	"date":         "Please enter a valid date (ex. '1/1/2013').",
	"year":         "Please enter a valid year.",
	"url":          "Please enter a valid URL (ex. 'http://google.com').",
	"money_usa":    "Please enter a valid dollar amount (ex. '5.99').",
	"money_euro":   "Please enter a valid Euro amount (ex. '5,99').",
	"creditcard":   "Please enter a valid 16-digit credit card number.",
	"matches":      "Sorry, but this field must match {0}.",
	"different":    "Sorry, but this field must be different from {0}.",
	"min":          "Please enter a value greater than or equal to {0}.",
	"max":          "Please enter a value less than or equal to {0}.",
	"range":        "Please enter a value no less than {0} and no more than {1}.",
	"between":      "Please enter a value between {0} and {1}.",
	"minlength":    "Sorry, but this needs to be at least {0} characters long.",
	"maxlength":    "Sorry, but this must be {0} characters or less.",
	"before":       "Please choose a date before {0}.",
	"after":        "Please choose a date after {0}.",
	"accepted":     "Sorry, but you must accept these terms.",
}

// Defaults returns a copy of the built-in message table.
func Defaults() map[string]string {
	return maps.Clone(defaults)
}

// Catalog is an immutable message table. Only caller-supplied keys act as
// field overrides; built-in templates are looked up by rule name alone.
type Catalog struct {
	templates map[string]string
	overrides map[string]string
}

// NewCatalog merges the default messages with overrides.
func NewCatalog(overrides map[string]string) *Catalog {
	c := &Catalog{templates: Defaults(), overrides: maps.Clone(overrides)}
	maps.Copy(c.templates, overrides)
	return c
}

// Lookup returns the template stored under key.
func (c *Catalog) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	tmpl, ok := c.templates[key]
	return tmpl, ok
}

// Base returns the generic fallback message.
func (c *Catalog) Base() string {
	if tmpl, ok := c.Lookup(BaseKey); ok {
		return tmpl
	}
	return defaults[BaseKey]
}

// FieldOverride returns the caller-supplied message for field, if any.
func (c *Catalog) FieldOverride(field string) (string, bool) {
	if c == nil {
		return "", false
	}
	tmpl, ok := c.overrides[field]
	return tmpl, ok
}

// Resolve picks the message for a failed clause: the field override, then
// the rule template formatted with p, then the base message. An empty rule
// name skips the rule step.
func (c *Catalog) Resolve(field, rule string, p rules.Params) string {
	if tmpl, ok := c.FieldOverride(field); ok {
		return tmpl
	}
	if rule != "" {
		if tmpl, ok := c.Lookup(rule); ok {
			return Format(tmpl, p)
		}
	}
	return c.Base()
}

// Format replaces the first occurrence of each {i} placeholder with the
// i-th comma-separated param, in ascending order. Absent params leave the
// template untouched, as do placeholders without a matching param.
func Format(template string, p rules.Params) string {
	if !p.Present {
		return template
	}
	for i, param := range p.List() {
		template = strings.Replace(template, "{"+strconv.Itoa(i)+"}", param, 1)
	}
	return template
}
