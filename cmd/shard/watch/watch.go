// Package watch implements a live terminal dashboard for a single
// search, rendering each completed iterative-deepening depth's
// stats and principal variation as they arrive.
package watch

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	wordwrap "github.com/mitchellh/go-wordwrap"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/search"
)

// Run starts a termui dashboard that searches fen to depth (0 means
// unbounded, stopped by 'q'/Ctrl-C), rendering every completed
// depth's report live. It blocks until the search finishes and a key
// is pressed, or until the user quits early.
func Run(fen string, depth int) error {
	b, err := board.New(fen)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer ui.Close()

	ctx := search.NewContext(b, 64, 8)

	header := widgets.NewParagraph()
	header.Title = "Shard"
	header.Text = fen

	stats := widgets.NewParagraph()
	stats.Title = "Search"
	stats.Text = "warming up..."

	pv := widgets.NewParagraph()
	pv.Title = "Principal Variation"

	grid := ui.NewGrid()
	width, height := ui.TerminalDimensions()
	grid.SetRect(0, 0, width, height)
	grid.Set(
		ui.NewRow(1.0/6,
			ui.NewCol(1.0, header),
		),
		ui.NewRow(2.0/6,
			ui.NewCol(1.0, stats),
		),
		ui.NewRow(3.0/6,
			ui.NewCol(1.0, pv),
		),
	)

	render := func() { ui.Render(grid) }

	ctx.OnReport = func(r search.Report) {
		stats.Text = fmt.Sprintf(
			"depth %d seldepth %d\nnodes %d nps %.0f\nhashfull %.0f%%\nscore %s\ntime %s",
			r.Depth, r.SelDepth, r.Nodes, r.Nps, r.Hashfull*100, r.Score, r.Time,
		)
		pv.Text = wordwrap.WrapString(r.PV.String(), uint(pv.Inner.Dx()))
		render()
	}

	render()

	done := make(chan struct{})
	go func() {
		_, _, _ = ctx.Search(search.Limits{Depth: depth})
		close(done)
	}()

	events := ui.PollEvents()
	for {
		select {
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				ctx.Stop()
				return nil
			case "<Resize>":
				width, height := ui.TerminalDimensions()
				grid.SetRect(0, 0, width, height)
				render()
			}

		case <-done:
			// leave the final report on screen until the user quits
			<-events
			return nil
		}
	}
}
