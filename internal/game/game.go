package game

import (
	"errors"
	"fmt"
	"strings"

	"squad-tactics/assets"
	"squad-tactics/internal/archive"
	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/mission"
	"squad-tactics/internal/render"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/scenario"
	"squad-tactics/internal/unit"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// GameState tracks the host's state machine around one mission.
type GameState uint8

const (
	StateBriefing GameState = iota
	StatePlaying
	StateEnded
	StateQuit
)

// Source produces the next mission to play.
type Source func() (*scenario.Setup, error)

// Options are the per-session settings of a Game.
type Options struct {
	Commander string
	Seed      int64
	Archive   *archive.Store // nil disables debrief storage
	Log       zerolog.Logger
}

// Game is the terminal host: it draws a mission, turns keys into intents
// and reports events as messages.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	next     Source
	opts     Options
	setup    *scenario.Setup
	mission  *mission.Mission
	cursor   gamemap.Point
	state    GameState
	messages []string
	lore     map[string]bool // alien glyphs whose lore line was shown
	debrief  archive.Debrief
}

// New creates a Game on the local terminal.
func New(next Source, opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, next, opts), nil
}

// NewWithScreen creates a Game on an already initialised screen, such as
// one backed by an SSH session.
func NewWithScreen(screen tcell.Screen, next Source, opts Options) *Game {
	return &Game{screen: screen, next: next, opts: opts}
}

// Run plays missions until the player quits. Every mission, finished or
// abandoned, is tallied and archived.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		if err := g.start(); err != nil {
			return err
		}
		if !g.showBriefing() {
			g.finish()
			return nil
		}
		g.state = StatePlaying
		for g.state == StatePlaying {
			g.draw()
			if g.mission.Over() {
				// Hold the final frame until a key is pressed.
				g.state = StateEnded
				g.waitKey()
				break
			}
			switch ev := g.screen.PollEvent().(type) {
			case nil:
				g.state = StateQuit
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					g.state = StateQuit
				} else {
					g.processAction(action)
				}
			}
		}
		g.finish()
		if g.state == StateQuit || !g.showEndScreen() {
			return nil
		}
	}
}

// start loads the next mission and resets per-mission state.
func (g *Game) start() error {
	setup, err := g.next()
	if err != nil {
		return fmt.Errorf("load mission: %w", err)
	}
	g.setup = setup
	g.state = StateBriefing
	g.messages = nil
	g.lore = make(map[string]bool)
	g.debrief = archive.Debrief{}

	setup.World.Events.Subscribe(g.onEvent)
	g.mission = mission.New(setup.World)
	g.renderer = render.NewRenderer(g.screen, setup.Theme)

	if soldiers := setup.World.Living(unit.Player); len(soldiers) > 0 {
		g.selectSoldier(soldiers[0])
	}
	g.renderer.CenterOn(g.cursor.X, g.cursor.Y)
	g.addMessage(fmt.Sprintf("%s: %d soldiers deployed.", setup.Name, setup.World.LivingCount(unit.Player)))
	g.addMessage("Tab cycles soldiers, m moves to cursor, f fires, r reloads, e ends turn.")
	return nil
}

// finish tallies the mission and stores the debrief.
func (g *Game) finish() {
	stream := g.mission.Events()
	events := stream.All()
	d, err := archive.Tally(g.setup.Name, g.opts.Seed, g.mission.World(), events)
	if err != nil {
		g.opts.Log.Warn().Err(err).Msg("debrief saved without casualty list")
	}
	d.Commander = g.opts.Commander
	if err := d.AttachReplay(events); err != nil {
		g.opts.Log.Warn().Err(err).Msg("debrief saved without replay")
	}
	g.debrief = d
	g.opts.Log.Info().
		Str("mission", d.Mission).
		Str("outcome", d.Outcome).
		Int("turns", d.Turns).
		Int("aliensKilled", d.AliensKilled).
		Int("soldiersLost", d.SoldiersLost).
		Int("events", stream.Len()).
		Msg("mission finished")
	if g.opts.Archive == nil {
		return
	}
	if err := g.opts.Archive.Save(&g.debrief); err != nil {
		g.opts.Log.Error().Err(err).Msg("failed to archive debrief")
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.mission, g.setup.Glyphs, g.cursor)
	g.renderer.DrawHUD(g.mission, g.setup.Name, g.cursor, g.messages)
}

// processAction turns one key action into a cursor change or an intent.
func (g *Game) processAction(action Action) {
	w := g.setup.World
	switch action {
	case ActionNextSoldier, ActionPrevSoldier:
		g.cycleSoldier(action == ActionNextSoldier)

	case ActionCenter:
		g.renderer.CenterOn(g.cursor.X, g.cursor.Y)

	case ActionMoveToCursor:
		sel := w.Unit(g.mission.Selected())
		if sel == nil {
			g.addMessage("Select a soldier first (Tab).")
			return
		}
		path := w.Map.FindPath(gamemap.Point{X: sel.X, Y: sel.Y}, g.cursor, g.knownOccupied)
		if path == nil {
			g.addMessage("No route there.")
			return
		}
		if err := g.mission.RequestMove(sel.ID, path); err != nil {
			g.reject(err)
		}

	case ActionFire:
		target, ok := render.VisibleUnitAt(g.mission, g.cursor)
		if !ok {
			g.addMessage("No target under the cursor.")
			return
		}
		if err := g.mission.RequestAttack(g.mission.Selected(), target.ID); err != nil {
			g.reject(err)
		}

	case ActionReload:
		if err := g.mission.RequestReload(g.mission.Selected()); err != nil {
			g.reject(err)
		}

	case ActionEndTurn:
		if err := g.mission.RequestEndTurn(); err != nil {
			g.reject(err)
			return
		}
		if soldiers := w.Living(unit.Player); len(soldiers) > 0 && !g.mission.Over() {
			g.selectSoldier(soldiers[0])
			g.renderer.Follow(g.cursor.X, g.cursor.Y)
		}

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return
		}
		nx, ny := g.cursor.X+dx, g.cursor.Y+dy
		if w.Map.InBounds(nx, ny) {
			g.cursor = gamemap.Point{X: nx, Y: ny}
			g.renderer.Follow(nx, ny)
		}
	}
}

// knownOccupied blocks tiles holding a soldier or an alien the squad
// sees. Hidden aliens are not revealed by path search.
func (g *Game) knownOccupied(x, y int) bool {
	u := g.setup.World.UnitAt(x, y)
	if u == nil {
		return false
	}
	return u.Faction == unit.Player || g.setup.World.Fog(unit.Player).IsVisible(x, y)
}

func (g *Game) selectSoldier(s *unit.Unit) {
	if err := g.mission.Select(s.ID); err != nil {
		g.reject(err)
		return
	}
	g.cursor = gamemap.Point{X: s.X, Y: s.Y}
}

// cycleSoldier selects the next (or previous) living soldier in roster order.
func (g *Game) cycleSoldier(forward bool) {
	soldiers := g.setup.World.Living(unit.Player)
	if len(soldiers) == 0 {
		return
	}
	idx := -1
	for i, s := range soldiers {
		if s.ID == g.mission.Selected() {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		idx = 0
	case forward:
		idx = (idx + 1) % len(soldiers)
	default:
		idx = (idx - 1 + len(soldiers)) % len(soldiers)
	}
	g.selectSoldier(soldiers[idx])
	g.renderer.Follow(g.cursor.X, g.cursor.Y)
}

func (g *Game) reject(err error) {
	g.opts.Log.Debug().Err(err).Msg("intent rejected")
	g.addMessage(describeError(err))
}

// describeError turns an intent rejection into a message log line.
func describeError(err error) string {
	switch {
	case errors.Is(err, rules.ErrInsufficientTimeUnits):
		return "Not enough time units."
	case errors.Is(err, rules.ErrOutOfAmmo):
		return "Clip empty. Reload with r."
	case errors.Is(err, rules.ErrNothingToReload):
		return "Clip is already full."
	case errors.Is(err, rules.ErrIllegalMove):
		return "Something blocks the way."
	case errors.Is(err, rules.ErrInvalidUnit):
		return "Select a living soldier first (Tab)."
	case errors.Is(err, rules.ErrActionDuringWrongPhase):
		return "Not your turn."
	case errors.Is(err, rules.ErrInvalidTarget):
		return "Can't fire: " + err.Error()
	}
	return err.Error()
}

// onEvent writes a message for each core event as it happens.
func (g *Game) onEvent(e event.Event) {
	w := g.setup.World
	name := func(id unit.ID) string {
		if u := w.Unit(id); u != nil {
			return u.Name
		}
		return "someone"
	}
	switch e.Kind {
	case event.KindHit:
		g.addMessage(fmt.Sprintf("%s hits %s for %d.", name(e.Actor), name(e.Target), e.Damage))
	case event.KindMiss:
		g.addMessage(fmt.Sprintf("%s misses %s.", name(e.Actor), name(e.Target)))
	case event.KindReactionFired:
		g.addMessage(fmt.Sprintf("%s snaps off a reaction shot at %s!", name(e.Actor), name(e.Target)))
	case event.KindUnitDied:
		u := w.Unit(e.Actor)
		if u != nil && u.Faction == unit.Player {
			g.addMessage(fmt.Sprintf("%s is down.", u.Name))
			return
		}
		g.addMessage(fmt.Sprintf("%s killed.", name(e.Actor)))
		glyph := g.setup.Glyphs[e.Actor]
		if lore, ok := assets.AlienLore[glyph]; ok && !g.lore[glyph] {
			g.lore[glyph] = true
			g.addMessage(lore)
		}
	case event.KindReloaded:
		g.addMessage(fmt.Sprintf("%s reloads.", name(e.Actor)))
	case event.KindPhaseChanged:
		switch e.Phase {
		case event.PhaseAlienTurn:
			g.addMessage("Alien activity...")
		case event.PhasePlayerTurn:
			g.addMessage(fmt.Sprintf("Turn %d. Your move.", e.Turn))
		}
	case event.KindMissionEnded:
		if e.Phase == event.PhaseVictory {
			g.addMessage("Site clear. Mission accomplished.")
		} else {
			g.addMessage("The squad is lost.")
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// waitKey blocks until a key is pressed or the screen goes away.
func (g *Game) waitKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// showBriefing displays the mission title and briefing until a key is
// pressed. It returns false when the screen is gone or the player quits.
func (g *Game) showBriefing() bool {
	lines := []string{strings.ToUpper(g.setup.Name), ""}
	lines = append(lines, strings.Split(strings.TrimRight(g.setup.Briefing, "\n"), "\n")...)
	lines = append(lines, "", "[any key] deploy   [Q] abort")
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for {
		g.renderer.DrawCentered(lines, style)
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			return keyToAction(ev) != ActionQuit
		}
	}
}

// showEndScreen renders the debrief and returns true if the player wants
// another mission, false to quit.
func (g *Game) showEndScreen() bool {
	d := g.debrief
	won := d.Outcome == event.PhaseVictory.String()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "MISSION DEBRIEF: "+strings.ToUpper(d.Mission), gold)
		badge, badgeStyle := "[DEFEAT]", red
		if won {
			badge, badgeStyle = "[VICTORY]", green
		}
		g.putText(sw-len(badge)-1, y, badge, badgeStyle)
		y += 2

		label(y, "Commander:", d.Commander)
		y++
		label(y, "Turns:", fmt.Sprintf("%d", d.Turns))
		y += 2
		label(y, "Shots Fired:", fmt.Sprintf("%d", d.Shots))
		y++
		label(y, "Hits:", fmt.Sprintf("%d (%.0f%%)", d.Hits, d.Accuracy()*100))
		y++
		label(y, "Reaction Shots:", fmt.Sprintf("%d", d.ReactionShots))
		y += 2
		label(y, "Aliens Killed:", fmt.Sprintf("%d / %d", d.AliensKilled, d.AliensDeployed))
		y++
		label(y, "Soldiers Lost:", fmt.Sprintf("%d / %d", d.SoldiersLost, d.SoldiersDeployed))
		y += 2

		sep(y)
		y += 2

		g.putText(2, y, "[R] Next Mission", green)
		g.putText(21, y, "[Q] Quit", red)

		g.screen.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
