package taxi

import (
	"fmt"
	"time"

	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/games/taxi/sim"
)

// Each map cell is drawn two columns wide and one row tall, so a car
// (half a cell wide) fills exactly one terminal column.
const (
	hudRows = 2
	minHUDW = 40
)

// Render draws the HUD and the city map, or the end screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if g.err != nil {
		dst.DrawTextCentered(h/2, "Cannot start: "+g.err.Error(), core.ColorRed)
		return
	}
	if g.session == nil {
		return
	}
	if g.session.Ended() {
		g.renderGameOver(dst)
		return
	}

	grid := g.session.Grid()
	boxW, boxH := grid.Size*2+2, grid.Size+2
	if w < max(boxW, minHUDW) || h < boxH+hudRows {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", max(boxW, minHUDW), boxH+hudRows), core.ColorGray)
		return
	}

	ox := (w - boxW) / 2
	oy := hudRows + (h-hudRows-boxH)/2
	g.renderHUD(dst, (w-minHUDW)/2, oy-hudRows)
	dst.DrawBox(ox, oy, boxW, boxH, core.ColorGray)
	left, top := ox+1, oy+1

	for j := 0; j < grid.Size; j++ {
		row := top + grid.Size - 1 - j
		for i := 0; i < grid.Size; i++ {
			if !grid.IsRoadCell(i, j) {
				dst.DrawText(left+2*i, row, "▒▒", core.ColorDarkGray)
			}
		}
	}

	world := g.session.World()
	for i := 0; i < sim.StationCapacity; i++ {
		if st := world.FuelStation(i); st != nil {
			g.drawTile(dst, left, top, st.Pos, "██", core.ColorOrange)
		}
	}
	for i := 0; i < world.ActivePickupItems(); i++ {
		item := world.PickupItem(i)
		if item == nil || !item.Active {
			continue
		}
		if item.Kind == sim.KindBox {
			g.drawTile(dst, left, top, item.Pos, "■■", core.ColorBrown)
		} else {
			g.drawTile(dst, left, top, item.Pos, "☺☺", core.ColorBlue)
		}
	}
	player := g.session.Player()
	if dest := player.Destination(); dest.Active {
		g.drawTile(dst, left, top, dest.Pos, "██", core.ColorGreen)
	}

	for _, n := range g.session.NPCs() {
		x, y := g.screenPos(left, top, n.Pos())
		dst.SetColored(x, y, npcGlyph(n.Direction()), core.ColorViolet)
	}
	x, y := g.screenPos(left, top, player.Pos())
	dst.SetColored(x, y, '█', g.carColor())

	if g.paused {
		dst.DrawTextCentered(oy+boxH/2, " PAUSED - press P ", core.ColorYellow)
	}
}

func (g *Game) carColor() core.Color {
	if g.role == sim.RoleDelivery {
		return core.ColorRed
	}
	return core.ColorYellow
}

// screenPos maps a y-up pixel position to a y-down terminal cell inside the
// map box.
func (g *Game) screenPos(left, top int, p sim.Position) (int, int) {
	grid := g.session.Grid()
	half := grid.CellSize / 2
	col := core.Clamp(p.X/half, 0, grid.Size*2-1)
	row := core.Clamp((grid.MaxY()-p.Y+half)/grid.CellSize, 0, grid.Size-1)
	return left + col, top + row
}

func (g *Game) drawTile(dst *core.Screen, left, top int, p sim.Position, glyph string, c core.Color) {
	x, y := g.screenPos(left, top, p)
	dst.DrawText(x, y, glyph, c)
}

func npcGlyph(d sim.Direction) rune {
	switch d {
	case sim.DirUp:
		return '▲'
	case sim.DirDown:
		return '▼'
	case sim.DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// formatClock renders whole remaining seconds as M:SS.
func formatClock(remaining time.Duration) string {
	secs := int(remaining / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	p := g.session.Player()
	// Whole seconds elapsed, as the clock on screen ticks once per second.
	total := g.cfg.Duration()
	shown := max(total-g.session.Elapsed().Truncate(time.Second), 0)

	fields := []struct {
		text string
		c    core.Color
	}{
		{fmt.Sprintf("Score=%d", p.Score()), core.ColorRed},
		{"Time=" + formatClock(shown), core.ColorYellow},
		{fmt.Sprintf("Money=%d", int(p.Money())), core.ColorGreen},
		{fmt.Sprintf("Fuel=%d", int(p.Fuel())), core.ColorBlue},
	}
	cx := x
	for _, f := range fields {
		dst.DrawText(cx, y, f.text, f.c)
		cx += len(f.text) + 2
	}

	cargo := "passenger"
	if g.role == sim.RoleDelivery {
		cargo = "package"
	}
	status := fmt.Sprintf("Find a %s", cargo)
	if p.Carrying() {
		status = fmt.Sprintf("Take the %s to the green block", cargo)
	}
	dst.DrawText(x, y+1, status, core.ColorWhite)
	if msg := g.session.Message(); msg != "" {
		dst.DrawText(x+len(status)+2, y+1, msg, core.ColorGray)
	}
}

func outcomeText(o sim.Outcome) string {
	switch o {
	case sim.OutcomeWin:
		return "Target score reached"
	case sim.OutcomeTimeUp:
		return "Time's up"
	case sim.OutcomeOutOfFuel:
		return "Out of fuel"
	case sim.OutcomeBankrupt:
		return "Score fell below zero"
	}
	return ""
}

func (g *Game) renderGameOver(dst *core.Screen) {
	h := dst.Height()
	score := g.session.Player().Score()
	if g.session.Outcome() == sim.OutcomeWin {
		dst.DrawTextCentered(h/2-1, fmt.Sprintf("You Win! Your score: %d", score), core.ColorGreen)
	} else {
		dst.DrawTextCentered(h/2-1, fmt.Sprintf("Game Over! Your score: %d", score), core.ColorRed)
	}
	dst.DrawTextCentered(h/2, outcomeText(g.session.Outcome()), core.ColorGray)
	dst.DrawTextCentered(h/2+2, "Press any key to exit. R to play again.", core.ColorRed)
}
