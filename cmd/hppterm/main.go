// Command hppterm shows a lattice-gas simulation in the terminal.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"hpp-ca/internal/app"
	"hpp-ca/internal/core"
	"hpp-ca/internal/lga"
	_ "hpp-ca/internal/sims/hpp"

	"github.com/gdamore/tcell/v2"
)

type palettedSim interface {
	Palette() []color.RGBA
}

type erroringSim interface {
	Err() error
}

type viewer struct {
	screen  tcell.Screen
	sim     core.Sim
	styles  []tcell.Style
	seed    int64
	paused  bool
	status  string
	stepped uint64
}

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	v := &viewer{
		screen: screen,
		sim:    sim,
		styles: cellStyles(sim),
		seed:   cfg.Seed,
		paused: cfg.Paused,
	}
	v.run(core.NewFixedStep(cfg.TPS))
}

func cellStyles(sim core.Sim) []tcell.Style {
	styles := make([]tcell.Style, lga.NumStates)
	ps, ok := sim.(palettedSim)
	for i := range styles {
		st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		if ok {
			if p := ps.Palette(); i < len(p) {
				c := p[i]
				st = st.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
		}
		styles[i] = st
	}
	return styles
}

func (v *viewer) run(pace *core.FixedStep) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(pace.Interval() / 2)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			if v.paused || !pace.ShouldStep() {
				continue
			}
			v.step()
			v.draw()
		}
	}
}

// handle applies a terminal event and reports whether the viewer should keep
// running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Rune() == 'n':
			v.paused = true
			v.step()
		case ev.Rune() == 'r':
			v.sim.Reset(v.seed)
			v.stepped = 0
			v.status = ""
		case ev.Rune() == 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
			v.stepped = 0
			v.status = ""
		}
	}
	return true
}

func (v *viewer) step() {
	v.sim.Step()
	if es, ok := v.sim.(erroringSim); ok {
		if err := es.Err(); err != nil {
			v.paused = true
			v.status = err.Error()
			return
		}
	}
	v.stepped++
}

func (v *viewer) draw() {
	size := v.sim.Size()
	cells := v.sim.Cells()
	sw, sh := v.screen.Size()
	rows := min(size.H, sh-1)
	cols := min(size.W, sw)

	for y := 0; y < rows; y++ {
		row := cells[y*size.W:]
		for x := 0; x < cols; x++ {
			s := row[x] & 0x0f
			v.screen.SetContent(x, y, rune(lga.FormatGlyph.Symbol(lga.State(s))), nil, v.styles[s])
		}
	}

	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s %dx%d gen %d [%s] q quit, space pause, n step, r reset, s reseed ",
		v.sim.Name(), size.W, size.H, v.stepped, state)
	if v.status != "" {
		line += "| " + v.status
	}
	v.printLine(0, rows, line)
	v.screen.Show()
}

func (v *viewer) printLine(x, y int, s string) {
	st := tcell.StyleDefault.Reverse(true)
	sw, _ := v.screen.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
	for ; x < sw; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
