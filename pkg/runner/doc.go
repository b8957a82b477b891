/*
Package runner implements the interactive loop that drives a domino tile from a
line-oriented input stream.

The runner reads one command per line through an IOHandler, maps it onto a tile
intent and dispatches it. The tile renders through the same handler, so every
accepted command produces exactly one drawing (text mode) or one snapshot line
(JSON mode).

# Key Components

  - Runner: reads commands until quit, EOF or context cancellation.
  - TextHandler: prompt-based terminal interaction with pluggable drawing.
  - JSONHandler: JSON-Lines snapshots out, intents in.

# Usage

	h := runner.NewTextHandler(os.Stdin, os.Stdout)
	tile := domino.New(h)
	if err := runner.New(runner.WithInputHandler(h)).Run(ctx, tile); err != nil {
		log.Fatal(err)
	}
*/
package runner
