package collision

import (
	"fmt"
	"strings"
)

// Direction is a set of axis-aligned sides.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown

	DirNone Direction = 0
	DirAll            = DirLeft | DirRight | DirUp | DirDown
)

// sides lists the single directions in index order.
var sides = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

func (d Direction) Has(o Direction) bool { return d&o == o && o != 0 }

// Horizontal reports whether d contains a left or right component.
func (d Direction) Horizontal() bool { return d&(DirLeft|DirRight) != 0 }

// Vertical reports whether d contains an up or down component.
func (d Direction) Vertical() bool { return d&(DirUp|DirDown) != 0 }

// Opposite mirrors every side in d.
func (d Direction) Opposite() Direction {
	var o Direction
	if d&DirLeft != 0 {
		o |= DirRight
	}
	if d&DirRight != 0 {
		o |= DirLeft
	}
	if d&DirUp != 0 {
		o |= DirDown
	}
	if d&DirDown != 0 {
		o |= DirUp
	}
	return o
}

func (d Direction) index() int {
	switch d {
	case DirLeft:
		return 0
	case DirRight:
		return 1
	case DirUp:
		return 2
	case DirDown:
		return 3
	}
	return -1
}

func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	var parts []string
	for _, s := range sides {
		if d&s != 0 {
			parts = append(parts, sideNames[s.index()])
		}
	}
	return strings.Join(parts, ",")
}

var sideNames = [4]string{"left", "right", "up", "down"}

// ParseDirections reads a comma separated list such as "left,up". "all"
// and "none" are accepted as well.
func ParseDirections(s string) (Direction, error) {
	var d Direction
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
		case "all":
			d |= DirAll
		case "none":
		case "left":
			d |= DirLeft
		case "right":
			d |= DirRight
		case "up", "top":
			d |= DirUp
		case "down", "bottom":
			d |= DirDown
		default:
			return DirNone, fmt.Errorf("unknown direction %q", part)
		}
	}
	return d, nil
}

// Response is what a body decides to do about a collision.
type Response uint8

const (
	// ResponseNone lets the movement pass through.
	ResponseNone Response = iota
	// ResponseSlide cancels movement along the collision axis only.
	ResponseSlide
	// ResponseStop cancels all movement.
	ResponseStop
	// ResponseBounce reverses movement along the collision axis.
	ResponseBounce
)

func (r Response) String() string {
	switch r {
	case ResponseNone:
		return "none"
	case ResponseSlide:
		return "slide"
	case ResponseStop:
		return "stop"
	case ResponseBounce:
		return "bounce"
	}
	return fmt.Sprintf("Response(%d)", uint8(r))
}
