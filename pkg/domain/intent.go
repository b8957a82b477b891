package domain

import (
	"fmt"
	"strings"
)

// Intent names a user action on a tile.
type Intent string

const (
	IntentRotateLeft  Intent = "rotate_left"
	IntentRotateRight Intent = "rotate_right"
	IntentRandomize   Intent = "randomize"
)

// Intents lists every intent in display order.
var Intents = []Intent{IntentRotateLeft, IntentRotateRight, IntentRandomize}

var intentAliases = map[string]Intent{
	"rotate_left":  IntentRotateLeft,
	"rotate-left":  IntentRotateLeft,
	"left":         IntentRotateLeft,
	"l":            IntentRotateLeft,
	"rotate_right": IntentRotateRight,
	"rotate-right": IntentRotateRight,
	"right":        IntentRotateRight,
	"r":            IntentRotateRight,
	"randomize":    IntentRandomize,
	"random":       IntentRandomize,
	"refresh":      IntentRandomize,
	"x":            IntentRandomize,
}

// ParseIntent resolves a command word (canonical name or short alias) into an Intent.
func ParseIntent(s string) (Intent, error) {
	if in, ok := intentAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return in, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, s)
}
