// Package tmpl provides conditional text templates for content data.
// Dynamic descriptions are data plus an interpreter rather than
// closures embedded in the catalog, so templates stay serializable.
package tmpl

import (
	"strings"

	"github.com/tbranton/whisperwood/pkg/cond"
)

// Fragment is an optional line of a template. If When is nil the
// fragment is always included; otherwise it is included only when the
// condition holds.
type Fragment struct {
	Text string     `json:"text"`
	When *cond.When `json:"when,omitempty"`
}

// Text is a conditional text template: a base string plus ordered
// fragments appended on their own lines when their conditions hold.
type Text struct {
	Base      string     `json:"base,omitempty"`
	Fragments []Fragment `json:"fragments,omitempty"`
}

// Plain builds a template that always renders the same string.
func Plain(s string) Text {
	return Text{Base: s}
}

// IsZero reports whether the template has no content at all.
func (t Text) IsZero() bool {
	return t.Base == "" && len(t.Fragments) == 0
}

// Render evaluates the template against the game state view.
func (t Text) Render(v cond.View) string {
	parts := make([]string, 0, 1+len(t.Fragments))
	if t.Base != "" {
		parts = append(parts, t.Base)
	}
	for _, f := range t.Fragments {
		if f.Text == "" {
			continue
		}
		if f.When == nil || cond.Evaluate(*f.When, v) {
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, "\n")
}
