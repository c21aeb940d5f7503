// Package cursor maps the GUI library's requested mouse cursor onto the
// platform's system cursors and applies it only when it changes.
package cursor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCursorKind is returned when the GUI library reports a cursor
// code with no known kind.
var ErrUnsupportedCursorKind = errors.New("unsupported cursor kind")

// Kind is a logical cursor shape requested by the GUI library.
type Kind uint8

const (
	// KindNone means the platform cursor is hidden.
	KindNone Kind = iota
	KindArrow
	KindTextInput
	KindResizeAll
	KindResizeNS
	KindResizeEW
	KindResizeNESW
	KindResizeNWSE
	KindHand
	KindNotAllowed
)

// Cursor codes as reported by the GUI library's IO.
const (
	CodeNone       = -1
	CodeArrow      = 0
	CodeTextInput  = 1
	CodeResizeAll  = 2
	CodeResizeNS   = 3
	CodeResizeEW   = 4
	CodeResizeNESW = 5
	CodeResizeNWSE = 6
	CodeHand       = 7
	CodeNotAllowed = 8
)

// KindFromCode converts a GUI cursor code into a Kind. Codes outside the
// known range yield ErrUnsupportedCursorKind.
func KindFromCode(code int) (Kind, error) {
	switch code {
	case CodeNone:
		return KindNone, nil
	case CodeArrow:
		return KindArrow, nil
	case CodeTextInput:
		return KindTextInput, nil
	case CodeResizeAll:
		return KindResizeAll, nil
	case CodeResizeNS:
		return KindResizeNS, nil
	case CodeResizeEW:
		return KindResizeEW, nil
	case CodeResizeNESW:
		return KindResizeNESW, nil
	case CodeResizeNWSE:
		return KindResizeNWSE, nil
	case CodeHand:
		return KindHand, nil
	case CodeNotAllowed:
		return KindNotAllowed, nil
	default:
		return KindNone, fmt.Errorf("%w: code %d", ErrUnsupportedCursorKind, code)
	}
}

// Code returns the GUI cursor code for k.
func (k Kind) Code() int {
	switch k {
	case KindArrow:
		return CodeArrow
	case KindTextInput:
		return CodeTextInput
	case KindResizeAll:
		return CodeResizeAll
	case KindResizeNS:
		return CodeResizeNS
	case KindResizeEW:
		return CodeResizeEW
	case KindResizeNESW:
		return CodeResizeNESW
	case KindResizeNWSE:
		return CodeResizeNWSE
	case KindHand:
		return CodeHand
	case KindNotAllowed:
		return CodeNotAllowed
	default:
		return CodeNone
	}
}

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindArrow:      "arrow",
	KindTextInput:  "text",
	KindResizeAll:  "resize-all",
	KindResizeNS:   "resize-ns",
	KindResizeEW:   "resize-ew",
	KindResizeNESW: "resize-nesw",
	KindResizeNWSE: "resize-nwse",
	KindHand:       "hand",
	KindNotAllowed: "not-allowed",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a Kind from its String form.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnsupportedCursorKind, s)
}

// System identifies one of the platform's built-in cursors.
type System uint8

const (
	SystemArrow System = iota
	SystemIBeam
	SystemSizeAll
	SystemSizeNS
	SystemSizeWE
	SystemSizeNESW
	SystemSizeNWSE
	SystemHand
	SystemNo

	SystemCount
)

var systemNames = [SystemCount]string{
	SystemArrow:    "arrow",
	SystemIBeam:    "ibeam",
	SystemSizeAll:  "size-all",
	SystemSizeNS:   "size-ns",
	SystemSizeWE:   "size-we",
	SystemSizeNESW: "size-nesw",
	SystemSizeNWSE: "size-nwse",
	SystemHand:     "hand",
	SystemNo:       "no",
}

func (s System) String() string {
	if s < SystemCount {
		return systemNames[s]
	}
	return fmt.Sprintf("system(%d)", uint8(s))
}

// SystemFor returns the system cursor that displays k. KindNone has no
// system cursor.
func SystemFor(k Kind) (System, error) {
	switch k {
	case KindArrow:
		return SystemArrow, nil
	case KindTextInput:
		return SystemIBeam, nil
	case KindResizeAll:
		return SystemSizeAll, nil
	case KindResizeNS:
		return SystemSizeNS, nil
	case KindResizeEW:
		return SystemSizeWE, nil
	case KindResizeNESW:
		return SystemSizeNESW, nil
	case KindResizeNWSE:
		return SystemSizeNWSE, nil
	case KindHand:
		return SystemHand, nil
	case KindNotAllowed:
		return SystemNo, nil
	default:
		return 0, fmt.Errorf("%w: %s has no system cursor", ErrUnsupportedCursorKind, k)
	}
}
