// Package keymap builds the table that tells the GUI library which scancode
// backs each of the logical keys it uses for navigation and editing
// shortcuts.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Alia5/imsdl/input"
)

// Key is a logical GUI key.
type Key uint8

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyKeypadEnter
	KeyA // select all
	KeyC // copy
	KeyV // paste
	KeyX // cut
	KeyY // redo
	KeyZ // undo

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyTab:         "Tab",
	KeyLeftArrow:   "LeftArrow",
	KeyRightArrow:  "RightArrow",
	KeyUpArrow:     "UpArrow",
	KeyDownArrow:   "DownArrow",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyInsert:      "Insert",
	KeyDelete:      "Delete",
	KeyBackspace:   "Backspace",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyEscape:      "Escape",
	KeyKeypadEnter: "KeypadEnter",
	KeyA:           "A",
	KeyC:           "C",
	KeyV:           "V",
	KeyX:           "X",
	KeyY:           "Y",
	KeyZ:           "Z",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey resolves a logical key by name, ignoring case.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

var defaults = [KeyCount]input.Scancode{
	KeyTab:         input.ScancodeTab,
	KeyLeftArrow:   input.ScancodeLeft,
	KeyRightArrow:  input.ScancodeRight,
	KeyUpArrow:     input.ScancodeUp,
	KeyDownArrow:   input.ScancodeDown,
	KeyPageUp:      input.ScancodePageUp,
	KeyPageDown:    input.ScancodePageDown,
	KeyHome:        input.ScancodeHome,
	KeyEnd:         input.ScancodeEnd,
	KeyInsert:      input.ScancodeInsert,
	KeyDelete:      input.ScancodeDelete,
	KeyBackspace:   input.ScancodeBackspace,
	KeySpace:       input.ScancodeSpace,
	KeyEnter:       input.ScancodeReturn,
	KeyEscape:      input.ScancodeEscape,
	KeyKeypadEnter: input.ScancodeKpEnter,
	KeyA:           input.ScancodeA,
	KeyC:           input.ScancodeC,
	KeyV:           input.ScancodeV,
	KeyX:           input.ScancodeX,
	KeyY:           input.ScancodeY,
	KeyZ:           input.ScancodeZ,
}

// KeyMap maps every logical Key to a scancode. It is a value type; once
// built it cannot be changed, only copied.
type KeyMap struct {
	codes [KeyCount]input.Scancode
}

// Default returns the standard SDL key map.
func Default() KeyMap {
	return KeyMap{codes: defaults}
}

// New returns the default key map with the given bindings replaced.
// Bindings are keyed by logical key name and valued by scancode name, as
// accepted by ParseKey and input.ParseScancode.
func New(bindings map[string]string) (KeyMap, error) {
	km := Default()
	// Sorted so that the first reported error does not depend on map order.
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key, err := ParseKey(name)
		if err != nil {
			return KeyMap{}, err
		}
		sc, err := input.ParseScancode(bindings[name])
		if err != nil {
			return KeyMap{}, fmt.Errorf("binding for %s: %w", key, err)
		}
		km.codes[key] = sc
	}
	return km, nil
}

// Lookup returns the scancode bound to k.
func (m KeyMap) Lookup(k Key) (input.Scancode, bool) {
	if k >= KeyCount {
		return input.ScancodeUnknown, false
	}
	return m.codes[k], true
}

// Each calls fn for every binding in Key order.
func (m KeyMap) Each(fn func(k Key, sc input.Scancode)) {
	for k, sc := range m.codes {
		fn(Key(k), sc)
	}
}

// Len returns the number of bindings.
func (m KeyMap) Len() int { return int(KeyCount) }
