package tui

// GlobalKeyBindings lists the keys that are always handled by the root model
// before dispatching to focused panels. None of them produce text, so the
// editor never needs them.
var GlobalKeyBindings = []string{"tab", "shift+tab", "ctrl+c", "ctrl+e", "ctrl+o", "ctrl+x"}

// overlayKeys close the schema overlay.
var overlayKeys = []string{"esc", "ctrl+o"}

// panelKeys maps each FocusTarget to the keys that panel handles internally.
var panelKeys = map[FocusTarget][]string{
	FocusSidebar: {"j", "k", "[", "]", "enter", "s"},
	FocusEditor:  {"alt+enter", "ctrl+r", "ctrl+l"},
	FocusResults: {"t", "c", "[", "]", "j", "k", "h", "l", "g", "G", "pgup", "pgdown", "ctrl+u", "ctrl+d"},
}

// IsGlobalKey reports whether key is a global keybinding (handled before panel dispatch).
func IsGlobalKey(key string) bool {
	return contains(GlobalKeyBindings, key)
}

// IsOverlayKey reports whether key closes the schema overlay.
func IsOverlayKey(key string) bool {
	return contains(overlayKeys, key)
}

// PanelKeys returns the list of keys handled by the given focused panel.
func PanelKeys(focus FocusTarget) []string {
	return panelKeys[focus]
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
