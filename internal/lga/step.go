package lga

// collide applies the rule table to every cell of t, reading cur and writing
// scratch. No cell reads any other cell.
func (g *Grid) collide(rules *RuleTable, t Tile) {
	for y := t.Y; y < t.Y+t.H; y++ {
		row := y * g.w
		for x := t.X; x < t.X+t.W; x++ {
			i := row + x
			g.scratch[i] = rules[g.cur[i]&Full]
		}
	}
}

// push scatters every particle of t's post-collision states into nxt. nxt
// must be cleared before the first push of an iteration. Destinations may lie
// outside t, so push is only safe from a single goroutine.
func (g *Grid) push(t Tile) {
	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			i := g.Index(x, y)
			s := g.scratch[i]
			if s == Empty {
				continue
			}
			for _, d := range Directions {
				if s&d == 0 {
					continue
				}
				if dst, ok := g.Neighbor(x, y, d); ok {
					g.nxt[dst] |= d
				} else if g.mode == Reflecting {
					g.nxt[i] |= Opposite(d)
				}
			}
		}
	}
}

// pull gathers, for every cell of t, the particles streaming into it from its
// neighbours' post-collision states. It writes only inside t, so tiles can be
// pulled concurrently once collision has finished everywhere.
func (g *Grid) pull(t Tile) {
	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			i := g.Index(x, y)
			var out State
			for _, d := range Directions {
				if src, ok := g.Neighbor(x, y, Opposite(d)); ok {
					out |= g.scratch[src] & d
				} else if g.mode == Reflecting && g.scratch[i]&Opposite(d) != 0 {
					out |= d
				}
			}
			g.nxt[i] = out
		}
	}
}

func (g *Grid) bounds() Tile { return Tile{W: g.w, H: g.h} }
