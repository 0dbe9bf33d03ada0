package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor commands. Editing keys are handled by the text area.
type KeyMap struct {
	Format key.Binding
	Save   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap binds formatting to formatKey (ctrl+f when empty).
func DefaultKeyMap(formatKey string) KeyMap {
	if formatKey == "" {
		formatKey = "ctrl+f"
	}

	return KeyMap{
		Format: key.NewBinding(key.WithKeys(formatKey), key.WithHelp(formatKey, "format")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Format, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
