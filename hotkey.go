package main

import (
	"errors"
	"fmt"
	"strings"
)

// RegisterHotKey modifiers
const (
	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000
)

var modifierNames = map[string]uint32{
	"ctrl":    modControl,
	"control": modControl,
	"alt":     modAlt,
	"shift":   modShift,
	"win":     modWin,
	"super":   modWin,
}

var namedKeys = map[string]uint32{
	"space":    0x20,
	"tab":      0x09,
	"enter":    0x0D,
	"esc":      0x1B,
	"pageup":   0x21,
	"pagedown": 0x22,
	"end":      0x23,
	"home":     0x24,
	"left":     0x25,
	"up":       0x26,
	"right":    0x27,
	"down":     0x28,
	"insert":   0x2D,
	"delete":   0x2E,
}

// hotkey is a global key combination: modifier mask plus a virtual key code.
type hotkey struct {
	Mods uint32
	Key  uint32

	keyName string
}

// parseHotkey parses combinations like "ctrl+alt+t".
func parseHotkey(s string) (hotkey, error) {
	var k hotkey

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return k, errors.New("empty hotkey")
	}

	for _, tok := range strings.Split(s, "+") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return hotkey{}, fmt.Errorf("hotkey %q: empty key name", s)
		}

		if m, found := modifierNames[tok]; found {
			k.Mods |= m
			continue
		}

		vk, found := virtualKey(tok)
		if !found {
			return hotkey{}, fmt.Errorf("hotkey %q: unknown key %q", s, tok)
		}
		if k.Key != 0 {
			return hotkey{}, fmt.Errorf("hotkey %q: more than one key", s)
		}
		k.Key = vk
		k.keyName = tok
	}

	if k.Key == 0 {
		return hotkey{}, fmt.Errorf("hotkey %q: no key", s)
	}
	if k.Mods == 0 {
		return hotkey{}, fmt.Errorf("hotkey %q: at least one of ctrl, alt, shift or win is required", s)
	}

	return k, nil
}

func virtualKey(name string) (uint32, bool) {
	if vk, found := namedKeys[name]; found {
		return vk, true
	}

	if len(name) == 1 {
		c := name[0]
		switch {
		case 'a' <= c && c <= 'z':
			return uint32(c-'a') + 'A', true
		case '0' <= c && c <= '9':
			return uint32(c), true
		}
		return 0, false
	}

	if name[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && fmt.Sprintf("f%d", n) == name && 1 <= n && n <= 24 {
			return 0x70 + uint32(n-1), true
		}
	}

	return 0, false
}

func (k hotkey) String() string {
	var parts []string
	if k.Mods&modControl != 0 {
		parts = append(parts, "ctrl")
	}
	if k.Mods&modAlt != 0 {
		parts = append(parts, "alt")
	}
	if k.Mods&modShift != 0 {
		parts = append(parts, "shift")
	}
	if k.Mods&modWin != 0 {
		parts = append(parts, "win")
	}
	parts = append(parts, k.keyName)
	return strings.Join(parts, "+")
}

type hotkeyBinding struct {
	key hotkey
	ev  event
}
