package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Scancode is a physical key identifier from the USB HID Keyboard/Keypad
// usage page. It does not depend on the keyboard layout.
type Scancode uint16

// ScancodeUnknown marks a key event for which the platform reported no
// scancode.
const ScancodeUnknown Scancode = 0

// ScancodeCount bounds the scancode range tracked by GUI key arrays.
const ScancodeCount = 512

const (
	// Letters
	ScancodeA Scancode = 0x04
	ScancodeB Scancode = 0x05
	ScancodeC Scancode = 0x06
	ScancodeD Scancode = 0x07
	ScancodeE Scancode = 0x08
	ScancodeF Scancode = 0x09
	ScancodeG Scancode = 0x0A
	ScancodeH Scancode = 0x0B
	ScancodeI Scancode = 0x0C
	ScancodeJ Scancode = 0x0D
	ScancodeK Scancode = 0x0E
	ScancodeL Scancode = 0x0F
	ScancodeM Scancode = 0x10
	ScancodeN Scancode = 0x11
	ScancodeO Scancode = 0x12
	ScancodeP Scancode = 0x13
	ScancodeQ Scancode = 0x14
	ScancodeR Scancode = 0x15
	ScancodeS Scancode = 0x16
	ScancodeT Scancode = 0x17
	ScancodeU Scancode = 0x18
	ScancodeV Scancode = 0x19
	ScancodeW Scancode = 0x1A
	ScancodeX Scancode = 0x1B
	ScancodeY Scancode = 0x1C
	ScancodeZ Scancode = 0x1D

	// Top row digits
	Scancode1 Scancode = 0x1E
	Scancode2 Scancode = 0x1F
	Scancode3 Scancode = 0x20
	Scancode4 Scancode = 0x21
	Scancode5 Scancode = 0x22
	Scancode6 Scancode = 0x23
	Scancode7 Scancode = 0x24
	Scancode8 Scancode = 0x25
	Scancode9 Scancode = 0x26
	Scancode0 Scancode = 0x27

	ScancodeReturn       Scancode = 0x28
	ScancodeEscape       Scancode = 0x29
	ScancodeBackspace    Scancode = 0x2A
	ScancodeTab          Scancode = 0x2B
	ScancodeSpace        Scancode = 0x2C
	ScancodeMinus        Scancode = 0x2D
	ScancodeEquals       Scancode = 0x2E
	ScancodeLeftBracket  Scancode = 0x2F
	ScancodeRightBracket Scancode = 0x30
	ScancodeBackslash    Scancode = 0x31
	ScancodeNonUSHash    Scancode = 0x32
	ScancodeSemicolon    Scancode = 0x33
	ScancodeApostrophe   Scancode = 0x34
	ScancodeGrave        Scancode = 0x35
	ScancodeComma        Scancode = 0x36
	ScancodePeriod       Scancode = 0x37
	ScancodeSlash        Scancode = 0x38
	ScancodeCapsLock     Scancode = 0x39

	ScancodeF1  Scancode = 0x3A
	ScancodeF2  Scancode = 0x3B
	ScancodeF3  Scancode = 0x3C
	ScancodeF4  Scancode = 0x3D
	ScancodeF5  Scancode = 0x3E
	ScancodeF6  Scancode = 0x3F
	ScancodeF7  Scancode = 0x40
	ScancodeF8  Scancode = 0x41
	ScancodeF9  Scancode = 0x42
	ScancodeF10 Scancode = 0x43
	ScancodeF11 Scancode = 0x44
	ScancodeF12 Scancode = 0x45

	ScancodePrintScreen Scancode = 0x46
	ScancodeScrollLock  Scancode = 0x47
	ScancodePause       Scancode = 0x48
	ScancodeInsert      Scancode = 0x49
	ScancodeHome        Scancode = 0x4A
	ScancodePageUp      Scancode = 0x4B
	ScancodeDelete      Scancode = 0x4C
	ScancodeEnd         Scancode = 0x4D
	ScancodePageDown    Scancode = 0x4E

	ScancodeRight Scancode = 0x4F
	ScancodeLeft  Scancode = 0x50
	ScancodeDown  Scancode = 0x51
	ScancodeUp    Scancode = 0x52

	ScancodeNumLock    Scancode = 0x53
	ScancodeKpDivide   Scancode = 0x54
	ScancodeKpMultiply Scancode = 0x55
	ScancodeKpMinus    Scancode = 0x56
	ScancodeKpPlus     Scancode = 0x57
	ScancodeKpEnter    Scancode = 0x58
	ScancodeKp1        Scancode = 0x59
	ScancodeKp2        Scancode = 0x5A
	ScancodeKp3        Scancode = 0x5B
	ScancodeKp4        Scancode = 0x5C
	ScancodeKp5        Scancode = 0x5D
	ScancodeKp6        Scancode = 0x5E
	ScancodeKp7        Scancode = 0x5F
	ScancodeKp8        Scancode = 0x60
	ScancodeKp9        Scancode = 0x61
	ScancodeKp0        Scancode = 0x62
	ScancodeKpPeriod   Scancode = 0x63

	ScancodeNonUSBackslash Scancode = 0x64
	ScancodeApplication    Scancode = 0x65

	ScancodeLeftCtrl   Scancode = 0xE0
	ScancodeLeftShift  Scancode = 0xE1
	ScancodeLeftAlt    Scancode = 0xE2
	ScancodeLeftGUI    Scancode = 0xE3
	ScancodeRightCtrl  Scancode = 0xE4
	ScancodeRightShift Scancode = 0xE5
	ScancodeRightAlt   Scancode = 0xE6
	ScancodeRightGUI   Scancode = 0xE7
)

// scancodeNames uses SDL's spelling so names in config files match what SDL
// tools print.
var scancodeNames = map[Scancode]string{
	ScancodeA: "A", ScancodeB: "B", ScancodeC: "C", ScancodeD: "D", ScancodeE: "E",
	ScancodeF: "F", ScancodeG: "G", ScancodeH: "H", ScancodeI: "I", ScancodeJ: "J",
	ScancodeK: "K", ScancodeL: "L", ScancodeM: "M", ScancodeN: "N", ScancodeO: "O",
	ScancodeP: "P", ScancodeQ: "Q", ScancodeR: "R", ScancodeS: "S", ScancodeT: "T",
	ScancodeU: "U", ScancodeV: "V", ScancodeW: "W", ScancodeX: "X", ScancodeY: "Y",
	ScancodeZ: "Z",

	Scancode1: "1", Scancode2: "2", Scancode3: "3", Scancode4: "4", Scancode5: "5",
	Scancode6: "6", Scancode7: "7", Scancode8: "8", Scancode9: "9", Scancode0: "0",

	ScancodeReturn:       "Return",
	ScancodeEscape:       "Escape",
	ScancodeBackspace:    "Backspace",
	ScancodeTab:          "Tab",
	ScancodeSpace:        "Space",
	ScancodeMinus:        "Minus",
	ScancodeEquals:       "Equals",
	ScancodeLeftBracket:  "LeftBracket",
	ScancodeRightBracket: "RightBracket",
	ScancodeBackslash:    "Backslash",
	ScancodeNonUSHash:    "NonUSHash",
	ScancodeSemicolon:    "Semicolon",
	ScancodeApostrophe:   "Apostrophe",
	ScancodeGrave:        "Grave",
	ScancodeComma:        "Comma",
	ScancodePeriod:       "Period",
	ScancodeSlash:        "Slash",
	ScancodeCapsLock:     "CapsLock",

	ScancodeF1: "F1", ScancodeF2: "F2", ScancodeF3: "F3", ScancodeF4: "F4",
	ScancodeF5: "F5", ScancodeF6: "F6", ScancodeF7: "F7", ScancodeF8: "F8",
	ScancodeF9: "F9", ScancodeF10: "F10", ScancodeF11: "F11", ScancodeF12: "F12",

	ScancodePrintScreen: "PrintScreen",
	ScancodeScrollLock:  "ScrollLock",
	ScancodePause:       "Pause",
	ScancodeInsert:      "Insert",
	ScancodeHome:        "Home",
	ScancodePageUp:      "PageUp",
	ScancodeDelete:      "Delete",
	ScancodeEnd:         "End",
	ScancodePageDown:    "PageDown",

	ScancodeRight: "Right",
	ScancodeLeft:  "Left",
	ScancodeDown:  "Down",
	ScancodeUp:    "Up",

	ScancodeNumLock:    "NumLock",
	ScancodeKpDivide:   "KP_Divide",
	ScancodeKpMultiply: "KP_Multiply",
	ScancodeKpMinus:    "KP_Minus",
	ScancodeKpPlus:     "KP_Plus",
	ScancodeKpEnter:    "KP_Enter",
	ScancodeKp1:        "KP_1",
	ScancodeKp2:        "KP_2",
	ScancodeKp3:        "KP_3",
	ScancodeKp4:        "KP_4",
	ScancodeKp5:        "KP_5",
	ScancodeKp6:        "KP_6",
	ScancodeKp7:        "KP_7",
	ScancodeKp8:        "KP_8",
	ScancodeKp9:        "KP_9",
	ScancodeKp0:        "KP_0",
	ScancodeKpPeriod:   "KP_Period",

	ScancodeNonUSBackslash: "NonUSBackslash",
	ScancodeApplication:    "Application",

	ScancodeLeftCtrl:   "LeftCtrl",
	ScancodeLeftShift:  "LeftShift",
	ScancodeLeftAlt:    "LeftAlt",
	ScancodeLeftGUI:    "LeftGUI",
	ScancodeRightCtrl:  "RightCtrl",
	ScancodeRightShift: "RightShift",
	ScancodeRightAlt:   "RightAlt",
	ScancodeRightGUI:   "RightGUI",
}

var scancodesByName = func() map[string]Scancode {
	m := make(map[string]Scancode, len(scancodeNames))
	for sc, name := range scancodeNames {
		m[normalizeName(name)] = sc
	}
	return m
}()

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

func (s Scancode) String() string {
	if name, ok := scancodeNames[s]; ok {
		return name
	}
	return "0x" + strconv.FormatUint(uint64(s), 16)
}

// Valid reports whether s is a known, non-zero scancode within ScancodeCount.
func (s Scancode) Valid() bool {
	return s != ScancodeUnknown && s < ScancodeCount
}

// ParseScancode resolves a scancode from its name (case, '_', '-' and spaces
// are ignored, so "KP_Enter", "kp-enter" and "KPENTER" are equivalent) or from
// a numeric literal such as "0x58" or "88".
func ParseScancode(s string) (Scancode, error) {
	if sc, ok := scancodesByName[normalizeName(s)]; ok {
		return sc, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return ScancodeUnknown, fmt.Errorf("unknown scancode %q", s)
	}
	sc := Scancode(n)
	if !sc.Valid() {
		return ScancodeUnknown, fmt.Errorf("scancode %q out of range", s)
	}
	return sc, nil
}
