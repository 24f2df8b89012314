package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
	"github.com/lixenwraith/vi-crush/engine"
	"github.com/lixenwraith/vi-crush/input"
	"github.com/lixenwraith/vi-crush/render"
)

// soundPlayer is the part of audio.SoundManager the game loop drives
type soundPlayer interface {
	PlayPass(combo int)
	PlayReject()
	PlayWin()
	PlayLose()
	ToggleMute() bool
	Muted() bool
}

// App is the terminal front end: it turns intents into session gestures and
// keeps the transient marks (hint, reject flash, status line) the renderer overlays
type App struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.TerminalRenderer
	machine  *input.Machine
	sound    soundPlayer
	log      *zap.Logger
	now      func() time.Time

	cursor board.Coord

	hint      [2]board.Coord
	hintUntil time.Time

	reject      [2]board.Coord
	rejectUntil time.Time

	message      string
	messageUntil time.Time
}

// NewApp wires a session to the screen and sound output
func NewApp(screen tcell.Screen, session *engine.Session, sound soundPlayer, log *zap.Logger) *App {
	a := &App{
		screen:   screen,
		session:  session,
		renderer: render.NewTerminalRenderer(screen),
		machine:  input.NewMachine(),
		sound:    sound,
		log:      log,
		now:      time.Now,
		cursor:   board.At(constants.BoardSize/2, constants.BoardSize/2),
	}
	session.SetObserver(a.onPass)
	return a
}

// onPass receives every cascade pass as it resolves
func (a *App) onPass(r engine.PassReport) {
	a.sound.PlayPass(r.Combo)
}

// HandleEvent processes one terminal event; false means quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		a.log.Info("quit", zap.Int("score", a.session.Score()))
		return false

	case input.IntentResize:
		a.screen.Sync()
		a.renderer.Resize()

	case input.IntentMotion:
		a.cursor = input.ApplyMotion(a.cursor, in.Motion, in.Count)

	case input.IntentSelect:
		a.gesture(a.cursor)

	case input.IntentMouseClick:
		a.cursor = in.Cell
		a.gesture(in.Cell)

	case input.IntentHint:
		a.showHint()

	case input.IntentNewGame:
		a.session.NewGame()
		a.hintUntil, a.rejectUntil = time.Time{}, time.Time{}
		a.setMessage("New game")
		a.log.Info("new game")

	case input.IntentToggleMute:
		if a.sound.ToggleMute() {
			a.setMessage("Sound off")
		} else {
			a.setMessage("Sound on")
		}
	}

	a.Draw()
	return true
}

// gesture forwards a cell choice to the session and reacts to the outcome
func (a *App) gesture(c board.Coord) {
	res := a.session.OnGesture(c.Row, c.Col)

	switch res.Outcome {
	case engine.OutcomeRejected:
		a.reject = [2]board.Coord{res.From, res.To}
		a.rejectUntil = a.now().Add(constants.RejectFlashDuration)
		a.sound.PlayReject()
		a.setMessage("No match")

	case engine.OutcomeCommitted:
		a.hintUntil = time.Time{}
		last := res.Passes[len(res.Passes)-1]
		if last.Combo > 1 {
			a.setMessage(fmt.Sprintf("COMBO x%d +%d", last.Combo, res.Gained))
		} else {
			a.setMessage(fmt.Sprintf("+%d", res.Gained))
		}

		switch a.session.State() {
		case engine.StateWon:
			a.sound.PlayWin()
		case engine.StateLost:
			a.sound.PlayLose()
		}

	case engine.OutcomeIgnored:
		if a.session.State().Terminal() {
			a.setMessage("Press n for a new game")
		}
	}
}

func (a *App) showHint() {
	x, y, ok := a.session.Hint()
	if !ok {
		if !a.session.State().Terminal() {
			a.setMessage("No moves available")
		}
		return
	}
	a.hint = [2]board.Coord{x, y}
	a.hintUntil = a.now().Add(constants.HintDuration)
}

func (a *App) setMessage(msg string) {
	a.message = msg
	a.messageUntil = a.now().Add(constants.StatusMessageTimeout)
}

// overlay collects the front-end marks still live at the current time
func (a *App) overlay() render.Overlay {
	now := a.now()
	o := render.Overlay{
		Cursor: a.cursor,
		Muted:  a.sound.Muted(),
	}
	if now.Before(a.hintUntil) {
		o.Hint, o.HasHint = a.hint, true
	}
	if now.Before(a.rejectUntil) {
		o.Reject, o.HasReject = a.reject, true
	}
	if now.Before(a.messageUntil) {
		o.Message = a.message
	}
	if pending := a.machine.GetPendingCommand(); pending != "" {
		o.Message = pending
	}
	return o
}

// Draw renders the current frame
func (a *App) Draw() {
	a.renderer.RenderFrame(a.session.Snapshot(), a.overlay())
}
