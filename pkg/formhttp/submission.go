package formhttp

import (
	"net/url"
	"slices"

	"github.com/dmitrymomot/livevalidator/pkg/formdef"
)

// Element is one control of a submitted form.
type Element struct {
	ID    string
	Name  string
	Field formdef.Field
}

// Submission is a validator environment over submitted form values. Field
// order and control types come from the form definition, current values from
// the request.
type Submission struct {
	elements []*Element
	values   url.Values
}

// NewSubmission pairs a definition with submitted values.
func NewSubmission(def *formdef.Definition, values url.Values) *Submission {
	s := &Submission{
		elements: make([]*Element, 0, len(def.Fields)),
		values:   values,
	}
	for _, f := range def.Fields {
		s.elements = append(s.elements, &Element{ID: f.ElementID(), Name: f.Name, Field: f})
	}
	return s
}

// Fields returns the enabled elements in definition order.
func (s *Submission) Fields() []*Element {
	out := make([]*Element, 0, len(s.elements))
	for _, el := range s.elements {
		if !el.Field.Disabled {
			out = append(out, el)
		}
	}
	return out
}

func (s *Submission) Identity(el *Element) (string, string) {
	return el.ID, el.Name
}

// Value returns the submitted value of a text control. Checkable controls
// report their own value whether checked or not, like a DOM element does.
func (s *Submission) Value(el *Element) string {
	if el.Field.Checkable() {
		return el.Field.CheckValue()
	}
	return s.values.Get(el.Name)
}

func (s *Submission) FindByName(name string) (*Element, bool) {
	i := slices.IndexFunc(s.elements, func(el *Element) bool { return el.Name == name })
	if i < 0 {
		return nil, false
	}
	return s.elements[i], true
}

// IsChecked reports whether a checkable control carrying value was submitted.
func (s *Submission) IsChecked(value string) bool {
	for _, el := range s.elements {
		if el.Field.Checkable() && el.Field.CheckValue() == value && slices.Contains(s.values[el.Name], value) {
			return true
		}
	}
	return false
}
