package tabview

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Actions understood by the header strip.
const (
	ActionPrevHeader  = "prev-header"
	ActionNextHeader  = "next-header"
	ActionFirstHeader = "first-header"
	ActionLastHeader  = "last-header"
	ActionActivate    = "activate"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyMap struct {
	bindings []KeyBinding
}

func NewKeyMap(bindings []KeyBinding) *KeyMap {
	return &KeyMap{bindings: slices.Clone(bindings)}
}

func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"left"}, Action: ActionPrevHeader, Description: "previous tab"},
		{Keys: []string{"right"}, Action: ActionNextHeader, Description: "next tab"},
		{Keys: []string{"home", "pgup"}, Action: ActionFirstHeader, Description: "first tab"},
		{Keys: []string{"end", "pgdown"}, Action: ActionLastHeader, Description: "last tab"},
		{Keys: []string{"enter", "space"}, Action: ActionActivate, Description: "activate tab"},
	})
}

func (k *KeyMap) Register(binding KeyBinding) {
	k.bindings = append(k.bindings, binding)
}

func (k *KeyMap) Bindings() []KeyBinding {
	return slices.Clone(k.bindings)
}

func (k *KeyMap) IsAction(msg tea.KeyMsg, action string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range k.bindings {
		if b.Action != action {
			continue
		}
		for _, key := range b.Keys {
			if normalizeKey(key) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}
