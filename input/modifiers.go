package input

import "strings"

// Mod is a keyboard modifier bitmask with separate left and right variants.
type Mod uint16

const (
	ModLeftCtrl   Mod = 0x01
	ModLeftShift  Mod = 0x02
	ModLeftAlt    Mod = 0x04
	ModLeftGUI    Mod = 0x08 // Windows/Command key
	ModRightCtrl  Mod = 0x10
	ModRightShift Mod = 0x20
	ModRightAlt   Mod = 0x40
	ModRightGUI   Mod = 0x80

	ModCtrl  = ModLeftCtrl | ModRightCtrl
	ModShift = ModLeftShift | ModRightShift
	ModAlt   = ModLeftAlt | ModRightAlt
	ModGUI   = ModLeftGUI | ModRightGUI
)

func (m Mod) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Mod) Shift() bool { return m&ModShift != 0 }
func (m Mod) Alt() bool   { return m&ModAlt != 0 }
func (m Mod) Super() bool { return m&ModGUI != 0 }

func (m Mod) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m.Ctrl() {
		parts = append(parts, "ctrl")
	}
	if m.Shift() {
		parts = append(parts, "shift")
	}
	if m.Alt() {
		parts = append(parts, "alt")
	}
	if m.Super() {
		parts = append(parts, "super")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
