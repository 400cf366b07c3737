// Package border encodes the border style drawn on each side of a cell as a
// bit-packed mask, and maps masks to box-drawing glyphs.
//
// A mask holds four disjoint fields of BitsPerStyle bits, one per side:
//
//	up | right | down | left
//
// with up in the highest field. Compose is the only way borders change: it
// clears one side's field and sets a new style there, so two windows can each
// own one side of a shared cell without knowing about each other.
package border

import (
	"errors"
	"fmt"
	"strings"
)

// BitsPerStyle is the width of a single side's field. Four fields must fit in
// a Mask.
const BitsPerStyle = 3

// MaxMask is one past the largest valid mask.
const MaxMask = 1 << (4 * BitsPerStyle)

var (
	ErrUnknownStyle = errors.New("unknown border style")
	ErrUnknownSide  = errors.New("unknown border side")
)

type Mask uint16

type Side uint8

const (
	Left Side = iota
	Down
	Right
	Up
)

// Sides lists every side in decoding order.
var Sides = [...]Side{Up, Right, Down, Left}

var sideNames = [...]string{
	Left:  "left",
	Down:  "down",
	Right: "right",
	Up:    "up",
}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

func (s Side) shift() uint {
	return uint(s) * BitsPerStyle
}

// ParseSide looks up a side by name.
func ParseSide(name string) (Side, error) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// MustSide is like ParseSide but panics on an unknown name.
func MustSide(name string) Side {
	s, err := ParseSide(name)
	if err != nil {
		panic(err)
	}
	return s
}

// styleMask isolates a single field at shift 0.
const styleMask Mask = 1<<BitsPerStyle - 1

// SideMask returns the ones-mask covering the given side's field.
func SideMask(side Side) Mask {
	return styleMask << side.shift()
}

// Compose clears side's field in m and sets style there. Other sides are
// never touched.
func Compose(m Mask, side Side, style Style) Mask {
	return m&^SideMask(side) | (Mask(style)&styleMask)<<side.shift()
}

// Style returns the style stored on the given side.
func (m Mask) Style(side Side) Style {
	return Style((m >> side.shift()) & styleMask)
}

// Of builds a mask from one style per side.
func Of(up, right, down, left Style) Mask {
	var m Mask
	m = Compose(m, Up, up)
	m = Compose(m, Right, right)
	m = Compose(m, Down, down)
	m = Compose(m, Left, left)
	return m
}

// String decodes the mask into a readable form such as
// "<up=thin,left=double>". Empty sides are omitted.
func (m Mask) String() string {
	var parts []string
	for _, side := range Sides {
		style := m.Style(side)
		if style == Empty {
			continue
		}
		parts = append(parts, side.String()+"="+style.String())
	}
	return "<" + strings.Join(parts, ",") + ">"
}
