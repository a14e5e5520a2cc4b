package render

import (
	"fmt"

	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/mission"
	"squad-tactics/internal/unit"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status lines and message log below the map.
func (r *Renderer) DrawHUD(m *mission.Mission, title string, cursor gamemap.Point, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, StatusLine(m, title), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, UnitLine(m, cursor), tcell.StyleDefault.Foreground(tcell.ColorLightCyan))

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// StatusLine summarises the mission: turn, phase and force counts.
// Contacts counts only aliens the squad currently sees.
func StatusLine(m *mission.Mission, title string) string {
	t := m.Turn()
	squad, contacts := 0, 0
	for _, v := range m.Snapshot() {
		if !v.Alive {
			continue
		}
		switch {
		case v.Faction == unit.Player:
			squad++
		case v.Seen:
			contacts++
		}
	}
	return fmt.Sprintf("%s  Turn %d  [%s]  Squad: %d  Contacts: %d", title, t.Number, t.Phase, squad, contacts)
}

// UnitLine describes the selected soldier and whatever the cursor is over.
func UnitLine(m *mission.Mission, cursor gamemap.Point) string {
	line := "No soldier selected (Tab to cycle)"
	for _, v := range m.Snapshot() {
		if v.ID == m.Selected() {
			line = fmt.Sprintf("%s  HP %d/%d  TU %d/%d  %s %d/%d",
				v.Name, v.HP, v.MaxHP, v.TU, v.MaxTU, v.Weapon, v.Ammo, v.ClipSize)
			break
		}
	}
	if v, ok := VisibleUnitAt(m, cursor); ok && v.ID != m.Selected() {
		line += fmt.Sprintf("  |  %s (%s) HP %d/%d", v.Name, v.Faction, v.HP, v.MaxHP)
	}
	return line
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// DrawCentered writes lines centred on an otherwise cleared screen.
func (r *Renderer) DrawCentered(lines []string, style tcell.Style) {
	r.screen.Clear()
	w, h := r.screen.Size()
	top := (h - len(lines)) / 2
	for i, l := range lines {
		x := (w - runewidth.StringWidth(l)) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, top+i, l, style)
	}
	r.screen.Show()
}
