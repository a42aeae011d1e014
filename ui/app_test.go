package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/merge2048/game/config"
	"github.com/wricardo/merge2048/game/engine"
	"github.com/wricardo/merge2048/game/service"
	"github.com/wricardo/merge2048/game/session"
)

// newTestApp wires a real service stack with a deterministic preset (no 4
// spawns) and returns the app plus the session manager for board injection.
func newTestApp(t *testing.T) (*App, *session.Manager) {
	t.Helper()

	dir := t.TempDir()
	preset := []byte(`{"name":"classic","description":"Starter board","rows":4,"cols":4,"initial_tiles":2,"four_chance":0,"win_tile":2048}`)
	if err := os.WriteFile(filepath.Join(dir, "classic.json"), preset, 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}

	configMgr, err := config.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	sessionMgr := session.NewManager()
	svc := service.NewGameService(sessionMgr, configMgr)

	info, err := svc.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	app, err := NewApp(svc, info.ID)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app, sessionMgr
}

func installGrid(t *testing.T, sessions *session.Manager, sessionID string, grid [][]int) {
	t.Helper()
	sess, err := sessions.Get(sessionID)
	if err != nil {
		t.Fatalf("Failed to fetch session: %v", err)
	}
	if err := sess.Engine.SetState(&engine.GameState{Grid: grid, ConfigName: "classic"}); err != nil {
		t.Fatalf("Failed to install grid: %v", err)
	}
}

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t)

	if app.configName != "classic" {
		t.Errorf("Expected config name 'classic', got %q", app.configName)
	}
	if len(app.state.Grid) != 4 || len(app.state.Grid[0]) != 4 {
		t.Errorf("Expected 4x4 grid, got %dx%d", len(app.state.Grid), len(app.state.Grid[0]))
	}
	if got := engine.CountTiles(app.state.Grid); got != 2 {
		t.Errorf("Expected 2 seeded tiles, got %d", got)
	}
	if app.titleFace == nil || app.labelFace == nil || app.bannerFace == nil {
		t.Error("Expected fonts to be initialized")
	}

	svc := app.svc
	if _, err := NewApp(svc, "nope"); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestAppMoveUpdatesState(t *testing.T) {
	app, sessions := newTestApp(t)

	installGrid(t, sessions, app.sessionID, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	app.move("left")

	if app.state.Score != 4 {
		t.Errorf("Expected score 4 after merge, got %d", app.state.Score)
	}
	if app.state.Grid[0][0] != 4 {
		t.Errorf("Expected merged 4 at top-left, got %d", app.state.Grid[0][0])
	}
	if app.overlayVisible() {
		t.Error("Expected no banner mid-game")
	}

	// An unknown direction is dropped without corrupting the state
	before := app.state
	app.move("sideways")
	if app.state != before {
		t.Error("Expected state to be untouched after a rejected direction")
	}
}

func TestAppWinBannerFlow(t *testing.T) {
	app, sessions := newTestApp(t)

	installGrid(t, sessions, app.sessionID, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	app.move("left")

	if !app.state.Won {
		t.Fatal("Expected won state")
	}
	if !app.overlayVisible() {
		t.Error("Expected win banner")
	}
	if !strings.Contains(app.status, "2048") {
		t.Errorf("Expected banner status to name the tile, got %q", app.status)
	}

	// Dismissing the banner resumes play
	app.wonAck = true
	if app.overlayVisible() {
		t.Error("Expected banner to clear after dismissal")
	}
	app.move("down")
	if app.overlayVisible() {
		t.Error("Expected won banner to stay dismissed on later moves")
	}
}

func TestAppGameOverBanner(t *testing.T) {
	app, sessions := newTestApp(t)

	// One hole left: the forced spawn completes a checkerboard with no merges
	installGrid(t, sessions, app.sessionID, [][]int{
		{4, 2, 4, 0},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	app.move("right")

	if !app.state.GameOver {
		t.Fatal("Expected game over after the board locked")
	}
	if !app.overlayVisible() {
		t.Error("Expected game over banner")
	}
}

func TestAppRestart(t *testing.T) {
	app, sessions := newTestApp(t)

	installGrid(t, sessions, app.sessionID, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	app.move("left")
	if !app.state.Won {
		t.Fatal("Expected won state before restart")
	}

	app.restart()

	if app.state.Score != 0 || app.state.MoveCount != 0 {
		t.Errorf("Expected fresh state, got score=%d moves=%d", app.state.Score, app.state.MoveCount)
	}
	if got := engine.CountTiles(app.state.Grid); got != 2 {
		t.Errorf("Expected 2 seeded tiles after restart, got %d", got)
	}
	if app.wonAck || app.status != "" {
		t.Error("Expected banner state to be cleared by restart")
	}
	if app.overlayVisible() {
		t.Error("Expected no banner after restart")
	}
}

func TestAppLayoutTracksGrid(t *testing.T) {
	app, sessions := newTestApp(t)

	w, h := app.Layout(0, 0)
	wantW := 4*tileSize + 5*tilePad
	wantH := headerHeight + 4*tileSize + 5*tilePad + footerHeight
	if w != wantW || h != wantH {
		t.Errorf("Layout() = (%d,%d), want (%d,%d)", w, h, wantW, wantH)
	}

	// A wider board stretches the window
	installGrid(t, sessions, app.sessionID, [][]int{
		{2, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2, 0},
	})
	app.move("left")

	w, h = app.Layout(0, 0)
	wantW = 6*tileSize + 7*tilePad
	wantH = headerHeight + 3*tileSize + 4*tilePad + footerHeight
	if w != wantW || h != wantH {
		t.Errorf("Layout() after resize = (%d,%d), want (%d,%d)", w, h, wantW, wantH)
	}
}

func TestTileColors(t *testing.T) {
	if tileColor(0) != emptyCellColor {
		t.Error("Expected empty cells to use the empty color")
	}
	if tileColor(2048) != tileColors[2048] {
		t.Error("Expected 2048 to use its palette entry")
	}
	if tileColor(4096) != superTileColor {
		t.Error("Expected values beyond the palette to use the super color")
	}
	if tileColor(8192) != tileColor(4096) {
		t.Error("Expected all super tiles to share one color")
	}

	if tileTextColor(2) != darkTextColor || tileTextColor(4) != darkTextColor {
		t.Error("Expected dark text on light tiles")
	}
	if tileTextColor(8) != lightTextColor || tileTextColor(2048) != lightTextColor {
		t.Error("Expected light text on colored tiles")
	}
}
