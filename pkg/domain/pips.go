package domain

import "fmt"

// PipCells is the number of cells in a square's 3×3 grid.
const PipCells = 9

// PipVector is the visibility pattern of one square, row-major:
// index 0 is the top-left cell, index 8 the bottom-right cell.
type PipVector [PipCells]bool

// Count returns the number of visible pips.
func (p PipVector) Count() int {
	n := 0
	for _, on := range p {
		if on {
			n++
		}
	}
	return n
}

// Rows splits the vector into its three grid rows.
func (p PipVector) Rows() [3][3]bool {
	var rows [3][3]bool
	for i, on := range p {
		rows[i/3][i%3] = on
	}
	return rows
}

func cells(idx ...int) PipVector {
	var p PipVector
	for _, i := range idx {
		p[i] = true
	}
	return p
}

// verticalPips holds the canonical pattern of each face for the vertical layout.
var verticalPips = [FaceCount]PipVector{
	0: cells(),
	1: cells(4),
	2: cells(2, 6),
	3: cells(2, 4, 6),
	4: cells(0, 2, 6, 8),
	5: cells(0, 2, 4, 6, 8),
	6: cells(0, 2, 3, 5, 6, 8),
}

// quarterTurn maps each horizontal cell to the vertical cell it takes its value from.
// The grid turns so the previous bottom-left cell becomes the new top-left cell.
var quarterTurn = [PipCells]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// horizontalPips is derived once from verticalPips through quarterTurn.
var horizontalPips = func() [FaceCount]PipVector {
	var table [FaceCount]PipVector
	for face, base := range verticalPips {
		for i, src := range quarterTurn {
			table[face][i] = base[src]
		}
	}
	return table
}()

// VisiblePips returns the pip pattern of face in the given orientation.
func VisiblePips(face FaceValue, orientation Orientation) (PipVector, error) {
	if err := checkFace(face); err != nil {
		return PipVector{}, err
	}
	switch orientation {
	case Vertical:
		return verticalPips[face], nil
	case Horizontal:
		return horizontalPips[face], nil
	default:
		return PipVector{}, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(orientation))
	}
}

// MustVisiblePips is like VisiblePips but panics on a contract violation.
func MustVisiblePips(face FaceValue, orientation Orientation) PipVector {
	p, err := VisiblePips(face, orientation)
	if err != nil {
		panic(err)
	}
	return p
}

// PipTable returns the patterns of every face for one orientation.
func PipTable(orientation Orientation) ([FaceCount]PipVector, error) {
	switch orientation {
	case Vertical:
		return verticalPips, nil
	case Horizontal:
		return horizontalPips, nil
	default:
		return [FaceCount]PipVector{}, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(orientation))
	}
}
