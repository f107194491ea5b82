// Package types provides shared type definitions for the application.
package types

import "time"

// EventKind identifies one haunting from the fixed catalog.
type EventKind int

const (
	Flicker EventKind = iota
	JumpMouse
	SpookyMessage
	GhostlyTyping
	SpookySound
)

// Catalog lists every event kind the scheduler may pick.
var Catalog = []EventKind{Flicker, JumpMouse, SpookyMessage, GhostlyTyping, SpookySound}

func (k EventKind) String() string {
	switch k {
	case Flicker:
		return "flicker"
	case JumpMouse:
		return "jump_mouse"
	case SpookyMessage:
		return "spooky_message"
	case GhostlyTyping:
		return "ghostly_typing"
	case SpookySound:
		return "spooky_sound"
	default:
		return "unknown"
	}
}

// Point is a screen position in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TypingPayload carries the data for a GhostlyTyping event.
type TypingPayload struct {
	Phrase   string `json:"phrase"`
	Position Point  `json:"position"`
}

// Event is one haunting handed from the scheduler to the UI loop.
type Event struct {
	ID     string         `json:"id"`
	Kind   EventKind      `json:"kind"`
	At     time.Time      `json:"at"`
	Typing *TypingPayload `json:"typing,omitempty"` // only for GhostlyTyping
}
