package render

import (
	"squad-tactics/assets"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/mission"
	"squad-tactics/internal/unit"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 6

// Renderer draws a mission from the squad's point of view onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  TileSet
}

// NewRenderer creates a Renderer for the given screen and terrain theme.
func NewRenderer(screen tcell.Screen, theme string) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-HUDHeight),
		tiles:  Theme(theme),
	}
}

// Resize adapts the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - HUDHeight
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Follow scrolls only when (x, y) is off screen.
func (r *Renderer) Follow(x, y int) { r.camera.Follow(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// ScreenToWorld converts a screen cell to world coordinates.
func (r *Renderer) ScreenToWorld(sx, sy int) (int, int) {
	return r.camera.ScreenToWorld(sx, sy)
}

// DrawFrame renders the squad's fog of war, units and the cursor.
// Aliens are drawn only on tiles the squad currently sees.
func (r *Renderer) DrawFrame(m *mission.Mission, glyphs map[unit.ID]string, cursor gamemap.Point) {
	r.screen.Clear()
	fog := m.Fog(unit.Player)
	r.drawMap(m.World().Map, fog)
	r.drawUnits(m.Snapshot(), glyphs, m.Selected())
	r.drawCursor(m, fog, glyphs, cursor)
}

// drawMap renders visible and explored tiles. Unexplored tiles stay blank.
func (r *Renderer) drawMap(gmap *gamemap.GameMap, fog *gamemap.FogLayer) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			visible := fog.IsVisible(x, y)
			if !visible && !fog.IsExplored(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.tiles.Glyph(gmap.At(x, y).Kind, visible), style)
		}
	}
}

// drawUnits draws corpses first so living units cover them.
func (r *Renderer) drawUnits(views []mission.UnitView, glyphs map[unit.ID]string, selected unit.ID) {
	for pass := 0; pass < 2; pass++ {
		for _, v := range views {
			if v.Alive != (pass == 1) {
				continue
			}
			if !v.Seen {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(v.X, v.Y)
			if !onScreen {
				continue
			}
			glyph := assets.GlyphCorpse
			if v.Alive {
				glyph = unitGlyph(glyphs, v.ID)
			}
			bg := tcell.ColorBlack
			if v.ID == selected {
				bg = tcell.ColorDarkGreen
			}
			r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Background(bg))
		}
	}
}

func (r *Renderer) drawCursor(m *mission.Mission, fog *gamemap.FogLayer, glyphs map[unit.ID]string, cursor gamemap.Point) {
	sx, sy, onScreen := r.camera.WorldToScreen(cursor.X, cursor.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue)
	gmap := m.World().Map
	glyph := " "
	if v, ok := VisibleUnitAt(m, cursor); ok {
		glyph = unitGlyph(glyphs, v.ID)
	} else if gmap.InBounds(cursor.X, cursor.Y) && (fog.IsVisible(cursor.X, cursor.Y) || fog.IsExplored(cursor.X, cursor.Y)) {
		glyph = r.tiles.Glyph(gmap.At(cursor.X, cursor.Y).Kind, fog.IsVisible(cursor.X, cursor.Y))
	}
	r.putGlyph(sx, sy, glyph, style)
}

// VisibleUnitAt returns the living unit at p if the squad can see it.
// Soldiers are always known to their own side.
func VisibleUnitAt(m *mission.Mission, p gamemap.Point) (mission.UnitView, bool) {
	for _, v := range m.Snapshot() {
		if !v.Alive || !v.Seen || v.X != p.X || v.Y != p.Y {
			continue
		}
		return v, true
	}
	return mission.UnitView{}, false
}

func unitGlyph(glyphs map[unit.ID]string, id unit.ID) string {
	if g, ok := glyphs[id]; ok && g != "" {
		return g
	}
	return assets.GlyphUnknown
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
