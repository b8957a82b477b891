package domain

import "errors"

// ErrInvalidFaceValue is returned when a face value falls outside [MinFace, MaxFace].
var ErrInvalidFaceValue = errors.New("invalid face value")

// ErrInvalidOrientation is returned when an orientation is neither Vertical nor Horizontal.
var ErrInvalidOrientation = errors.New("invalid orientation")

// ErrUnknownIntent is returned when a command does not name one of the tile intents.
var ErrUnknownIntent = errors.New("unknown intent")
