package tmpl

import (
	"testing"

	"github.com/tbranton/whisperwood/pkg/cond"
)

type stubView struct {
	items map[string]bool
}

func (s *stubView) HasItem(id string) bool              { return s.items[id] }
func (s *stubView) LocationHasItem(id string) bool      { return s.items[id] }
func (s *stubView) NPCPresent(string) bool              { return false }
func (s *stubView) PlayerLevel() int                    { return 1 }
func (s *stubView) PlayerGold() int                     { return 0 }
func (s *stubView) LocationID() string                  { return "" }
func (s *stubView) DialogueNPC() string                 { return "" }
func (s *stubView) QuestState(string) (int, bool, bool) { return 0, false, false }
func (s *stubView) BossDefeated(string) bool            { return false }

func TestTextRender(t *testing.T) {
	view := &stubView{items: map[string]bool{"rusty_sword": true}}

	tx := Text{
		Base: "A dusty shack.",
		Fragments: []Fragment{
			{Text: "A Rusty Sword leans against the wall.", When: &cond.When{LocationHasItem: "rusty_sword"}},
			{Text: "An empty pedestal stands here.", When: &cond.When{LocationHasItem: "mystic_orb"}},
			{Text: "Cracks let in thin sunlight."},
		},
	}

	got := tx.Render(view)
	want := "A dusty shack.\nA Rusty Sword leans against the wall.\nCracks let in thin sunlight."
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPlain(t *testing.T) {
	if got := Plain("hello").Render(&stubView{}); got != "hello" {
		t.Errorf("Plain render = %q", got)
	}
	if !(Text{}).IsZero() {
		t.Error("empty Text should be zero")
	}
	if Plain("x").IsZero() {
		t.Error("Plain text should not be zero")
	}
}
