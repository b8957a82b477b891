/*
Package domain contains the core models and transition rules of a domino tile.

It defines the tile state machine (orientation plus an ordered pair of face
values), the pip layout tables that map a face value to the visible dots of a
3×3 grid, and the immutable Snapshot handed to renderers. The package is kept
pure: no I/O, no randomness, no logging.

# Key Entities

  - Orientation: Vertical or Horizontal.
  - FaceValue: the pip count (0–6) on one square.
  - TileState: the mutable orientation and face pair owned by a controller.
  - PipVector: the 9-cell, row-major visibility pattern of one square.
  - Snapshot: the render-ready projection of a TileState.
  - Intent: one of the three user actions (rotate left, rotate right, randomize).
*/
package domain
