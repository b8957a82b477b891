/*
Package ports defines the driven ports (interfaces) of the domino controller.

These interfaces decouple the tile state machine from the environment it runs
in, so the same controller can paint a terminal, a browser page or a JSON
stream, and draw its face values from any random source.

# Key Interfaces

  - Renderer: receives one Snapshot per state change.
  - RandomSource: supplies the uniform draws used by randomize.
*/
package ports
