package ui

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wricardo/merge2048/game/engine"
	"github.com/wricardo/merge2048/game/service"
	"github.com/wricardo/merge2048/logger"
)

const (
	tileSize     = 120
	tilePad      = 10
	headerHeight = 100
	footerHeight = 30

	statBoxWidth  = 110
	statBoxHeight = 56
)

// App is the desktop client for a single game session. All game rules live
// behind the service; the app only sends directions and renders states.
type App struct {
	svc        service.GameService
	sessionID  string
	configName string

	state  *engine.GameState
	status string
	wonAck bool

	fontSource *text.GoTextFaceSource
	titleFace  *text.GoTextFace
	labelFace  *text.GoTextFace
	statFace   *text.GoTextFace
	bannerFace *text.GoTextFace
	faceCache  map[float64]*text.GoTextFace
}

// NewApp creates the desktop client for an existing session
func NewApp(svc service.GameService, sessionID string) (*App, error) {
	info, err := svc.GetSession(context.Background(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return &App{
		svc:        svc,
		sessionID:  info.ID,
		configName: info.ConfigName,
		state:      info.GameState,
		fontSource: source,
		titleFace:  &text.GoTextFace{Source: source, Size: 40},
		labelFace:  &text.GoTextFace{Source: source, Size: 16},
		statFace:   &text.GoTextFace{Source: source, Size: 13},
		bannerFace: &text.GoTextFace{Source: source, Size: 44},
		faceCache:  make(map[float64]*text.GoTextFace),
	}, nil
}

// move sends a direction to the service and adopts the resulting state
func (a *App) move(direction string) {
	result, err := a.svc.Move(context.Background(), a.sessionID, direction)
	if err != nil {
		logger.Log.Errorw("Move failed", "session_id", a.sessionID, "direction", direction, "error", err)
		return
	}

	a.state = result.GameState
	for _, ev := range result.Events {
		switch ev.Type {
		case "won", "game_over":
			a.status = ev.Message
		}
	}
}

// restart resets the session to a fresh board
func (a *App) restart() {
	state, err := a.svc.Reset(context.Background(), a.sessionID)
	if err != nil {
		logger.Log.Errorw("Restart failed", "session_id", a.sessionID, "error", err)
		return
	}

	a.state = state
	a.status = ""
	a.wonAck = false
}

// overlayVisible reports whether a blocking banner covers the board
func (a *App) overlayVisible() bool {
	return a.state.GameOver || (a.state.Won && !a.wonAck)
}

// Update handles keyboard input
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(a.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		a.restart()
		return nil
	}

	if a.overlayVisible() {
		// C continues a won game; the game over banner only offers restart
		if a.state.Won && !a.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyC) {
			a.wonAck = true
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.move("up")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.move("down")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.move("left")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.move("right")
	}

	return nil
}

// Draw renders the header, board, footer and any banner
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawHeader(screen)
	a.drawBoard(screen)
	a.drawFooter(screen)
	if a.overlayVisible() {
		a.drawOverlay(screen)
	}
}

// Layout returns the logical screen size for the current grid
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.boardWidth(), headerHeight + a.boardHeight() + footerHeight
}

func (a *App) boardWidth() int {
	cols := len(a.state.Grid[0])
	return cols*tileSize + (cols+1)*tilePad
}

func (a *App) boardHeight() int {
	rows := len(a.state.Grid)
	return rows*tileSize + (rows+1)*tilePad
}

func (a *App) drawHeader(screen *ebiten.Image) {
	a.drawText(screen, "2048", a.titleFace, tilePad+4, 12, darkTextColor)
	a.drawText(screen, a.configName, a.labelFace, tilePad+6, 62, darkTextColor)
	a.drawText(screen, "session "+a.sessionID, a.statFace, tilePad+6, 82, boardColor)

	w := float64(a.boardWidth())
	a.drawStatBox(screen, w-3*(statBoxWidth+tilePad), "SCORE", strconv.Itoa(a.state.Score))
	a.drawStatBox(screen, w-2*(statBoxWidth+tilePad), "MOVES", strconv.Itoa(a.state.MoveCount))
	a.drawStatBox(screen, w-(statBoxWidth+tilePad), "BEST", strconv.Itoa(engine.HighestTile(a.state.Grid)))
}

func (a *App) drawStatBox(screen *ebiten.Image, x float64, label, value string) {
	y := float64(headerHeight-statBoxHeight) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), statBoxWidth, statBoxHeight, boardColor, true)

	lw := text.Advance(label, a.statFace)
	a.drawText(screen, label, a.statFace, x+(statBoxWidth-lw)/2, y+7, emptyCellColor)

	vf := a.faceFor(22)
	vw := text.Advance(value, vf)
	a.drawText(screen, value, vf, x+(statBoxWidth-vw)/2, y+25, lightTextColor)
}

func (a *App) drawBoard(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, headerHeight, float32(a.boardWidth()), float32(a.boardHeight()), boardColor, true)

	for r, row := range a.state.Grid {
		for c, value := range row {
			x := float64(tilePad + c*(tileSize+tilePad))
			y := float64(headerHeight + tilePad + r*(tileSize+tilePad))
			vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, tileColor(value), true)

			if value == 0 {
				continue
			}
			str := strconv.Itoa(value)
			face := a.tileFace(value)
			tw := text.Advance(str, face)
			m := face.Metrics()
			th := m.HAscent + m.HDescent
			a.drawText(screen, str, face, x+(tileSize-tw)/2, y+(tileSize-th)/2, tileTextColor(value))
		}
	}
}

func (a *App) drawFooter(screen *ebiten.Image) {
	hint := "Arrows/WASD move | R restart | Esc quit"
	hw := text.Advance(hint, a.labelFace)
	y := float64(headerHeight + a.boardHeight() + 5)
	a.drawText(screen, hint, a.labelFace, (float64(a.boardWidth())-hw)/2, y, darkTextColor)
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	fill := wonOverlayColor
	title := "You win!"
	hint := "Press C to keep going or R to restart"
	textColor := lightTextColor
	if a.state.GameOver {
		fill = overOverlayColor
		title = "Game over!"
		hint = "Press R to restart"
		textColor = darkTextColor
	}

	bw, bh := float64(a.boardWidth()), float64(a.boardHeight())
	vector.DrawFilledRect(screen, 0, headerHeight, float32(bw), float32(bh), fill, true)

	tw := text.Advance(title, a.bannerFace)
	a.drawText(screen, title, a.bannerFace, (bw-tw)/2, headerHeight+bh/2-70, textColor)

	if a.status != "" {
		sf := a.faceFor(18)
		sw := text.Advance(a.status, sf)
		a.drawText(screen, a.status, sf, (bw-sw)/2, headerHeight+bh/2, textColor)
	}

	hw := text.Advance(hint, a.labelFace)
	a.drawText(screen, hint, a.labelFace, (bw-hw)/2, headerHeight+bh/2+40, textColor)
}

func (a *App) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// tileFace shrinks the font as the value gains digits so it stays inside the tile
func (a *App) tileFace(value int) *text.GoTextFace {
	size := 48.0
	switch {
	case value >= 10000:
		size = 26
	case value >= 1000:
		size = 32
	case value >= 100:
		size = 40
	}
	return a.faceFor(size)
}

func (a *App) faceFor(size float64) *text.GoTextFace {
	if f, ok := a.faceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: a.fontSource, Size: size}
	a.faceCache[size] = f
	return f
}

// Run opens the game window and blocks until the player quits
func Run(svc service.GameService, sessionID string) error {
	app, err := NewApp(svc, sessionID)
	if err != nil {
		return err
	}

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("merge2048 - %s", app.configName))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
