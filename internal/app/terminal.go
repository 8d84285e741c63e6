package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/render"
)

// terminalTick is how often the terminal viewer checks whether a
// generation is due.
const terminalTick = 10 * time.Millisecond

// RunTerminal shows the window of the controller's world on an
// initialized screen and handles keys until the user quits, the screen
// stops delivering events or ctx is done.
func RunTerminal(ctx context.Context, screen tcell.Screen, ctrl *Controller) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	painter := render.NewTerminalPainter(screen)
	draw := func() {
		painter.Paint(render.Capture(ctrl.World()), ctrl.Status())
	}
	draw()

	ticker := time.NewTicker(terminalTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					ctrl.Do(ActionQuit)
				case tcell.KeyRune:
					ctrl.Do(ActionForKey(ev.Rune()))
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			if ctrl.Quit() {
				return nil
			}
			draw()
		case <-ticker.C:
			if ctrl.Tick() {
				draw()
			}
		}
	}
}

// runTerminal runs the viewer on the controlling terminal.
func runTerminal(ctx context.Context, ctrl *Controller) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errgo.Notef(err, "cannot open terminal")
	}
	if err := screen.Init(); err != nil {
		return errgo.Notef(err, "cannot initialize terminal")
	}
	defer screen.Fini()
	return RunTerminal(ctx, screen, ctrl)
}
