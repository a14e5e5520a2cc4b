package render

import (
	"math/rand"
	"strings"
	"testing"

	"squad-tactics/assets"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/mission"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/scenario"
	"squad-tactics/internal/unit"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const corridor = `
name: Corridor
map: |
  ########################
  #S....................A#
  ########################
soldiers:
  - template: rookie
    name: Ash
aliens:
  - template: sectoid
`

func newTestMission(t *testing.T) (*mission.Mission, *scenario.Setup) {
	t.Helper()
	sc, err := scenario.Parse([]byte(corridor))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	setup, err := sc.Build(rules.Default(), rand.New(rand.NewSource(1)), zerolog.Nop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return mission.New(setup.World), setup
}

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(10, 10, 40, 20)
	sx, sy, ok := c.WorldToScreen(10, 10)
	if !ok {
		t.Fatal("centre tile should be on screen")
	}
	if sx != 20 || sy != 10 {
		t.Errorf("centre at (%d,%d), want (20,10)", sx, sy)
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx != 10 || wy != 10 {
		t.Errorf("ScreenToWorld = (%d,%d)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(40, 10); ok {
		t.Error("tile far to the right should be off screen")
	}
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(10, 10, 40, 20)
	before := *c
	c.Follow(12, 11)
	if *c != before {
		t.Errorf("Follow scrolled for an on-screen tile: %+v", *c)
	}
	c.Follow(60, 10)
	if _, _, ok := c.WorldToScreen(60, 10); !ok {
		t.Error("Follow should bring an off-screen tile into view")
	}
}

func TestTileGlyphs(t *testing.T) {
	ts := Theme("farmland")
	cases := []struct {
		kind    gamemap.TileKind
		visible bool
		want    string
	}{
		{gamemap.TileWall, true, ts.Wall},
		{gamemap.TileFloor, true, ts.Floor},
		{gamemap.TileSpecialFloor, true, ts.Special},
		{gamemap.TileWall, false, ts.DimWall},
		{gamemap.TileSpecialFloor, false, ts.DimFloor},
	}
	for _, tc := range cases {
		if got := ts.Glyph(tc.kind, tc.visible); got != tc.want {
			t.Errorf("Glyph(%d, %v) = %q, want %q", tc.kind, tc.visible, got, tc.want)
		}
	}
	if Theme("no-such-theme") != TileThemes[DefaultTheme] {
		t.Error("unknown theme should fall back to the default")
	}
}

func TestDrawFrameHidesUnseenAliens(t *testing.T) {
	m, setup := newTestMission(t)
	screen := newTestScreen(t)
	r := NewRenderer(screen, "urban")
	r.CenterOn(11, 1)

	ash := setup.World.Living(unit.Player)[0]
	alien := setup.World.Living(unit.Alien)[0]
	r.DrawFrame(m, setup.Glyphs, gamemap.Point{X: 5, Y: 1})

	sx, sy, ok := r.WorldToScreen(ash.X, ash.Y)
	if !ok {
		t.Fatal("soldier off screen")
	}
	if got, _, _, _ := screen.GetContent(sx, sy); got != []rune(assets.GlyphRookie)[0] {
		t.Errorf("soldier cell = %q, want rookie glyph", got)
	}

	ax, ay, ok := r.WorldToScreen(alien.X, alien.Y)
	if !ok {
		t.Fatal("alien tile off screen")
	}
	if got, _, _, _ := screen.GetContent(ax, ay); got != ' ' {
		t.Errorf("alien beyond sight drawn as %q", got)
	}
}

func TestVisibleUnitAt(t *testing.T) {
	m, setup := newTestMission(t)
	ash := setup.World.Living(unit.Player)[0]
	alien := setup.World.Living(unit.Alien)[0]

	if v, ok := VisibleUnitAt(m, gamemap.Point{X: ash.X, Y: ash.Y}); !ok || v.ID != ash.ID {
		t.Errorf("own soldier not reported: %+v %v", v, ok)
	}
	if _, ok := VisibleUnitAt(m, gamemap.Point{X: alien.X, Y: alien.Y}); ok {
		t.Error("alien outside sight reported")
	}
	if _, ok := VisibleUnitAt(m, gamemap.Point{X: 5, Y: 1}); ok {
		t.Error("empty tile reported a unit")
	}
}

func TestHUDLines(t *testing.T) {
	m, setup := newTestMission(t)
	ash := setup.World.Living(unit.Player)[0]

	status := StatusLine(m, "Corridor")
	for _, want := range []string{"Corridor", "Turn 1", "[player turn]", "Squad: 1", "Contacts: 0"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}

	if got := UnitLine(m, gamemap.Point{}); !strings.HasPrefix(got, "No soldier selected") {
		t.Errorf("unit line without selection = %q", got)
	}
	if err := m.Select(ash.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}
	got := UnitLine(m, gamemap.Point{})
	if !strings.HasPrefix(got, "Ash  HP 30/30  TU 58/58") {
		t.Errorf("unit line = %q", got)
	}
}
