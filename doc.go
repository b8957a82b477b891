/*
Package domino renders a single interactive domino tile.

A tile is two squares shown vertically or horizontally, each carrying 0 to 6
pips on a 3×3 grid. Three intents drive it: rotate left, rotate right and
randomize. Each intent updates the tile state and hands exactly one immutable
Snapshot to a Renderer, which alone decides how the tile is painted (terminal,
browser, JSON stream).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/domino"
		"github.com/aretw0/domino/pkg/domain"
		"github.com/aretw0/domino/pkg/ports"
	)

	func main() {
		renderer := ports.RendererFunc(func(ctx context.Context, snap domain.Snapshot) error {
			fmt.Println(snap.Orientation, snap.Faces)
			return nil
		})

		tile := domino.New(renderer)
		ctx := context.Background()
		if err := tile.Initialize(ctx); err != nil {
			log.Fatal(err)
		}
		if err := tile.RotateRight(ctx); err != nil {
			log.Fatal(err)
		}
	}

Multiple tiles are independent values: create one Tile per view.
*/
package domino
