package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/merge2048/game/engine"
	"github.com/wricardo/merge2048/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngineFromConfig(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Count() int {
	return len(m.sessions)
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"test": {
				Name:         "test",
				Description:  "Test configuration",
				Rows:         4,
				Cols:         4,
				InitialTiles: 2,
				FourChance:   0, // deterministic spawns for fixtures
				WinTile:      2048,
			},
			"big": {
				Name:         "big",
				Description:  "Bigger board",
				Rows:         5,
				Cols:         6,
				InitialTiles: 3,
				FourChance:   0.5,
				WinTile:      4096,
			},
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			Rows:        config.Rows,
			Cols:        config.Cols,
			WinTile:     config.WinTile,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["test"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	m.configs[name] = config
	return nil
}

// installGrid replaces a session's board with a fixed grid so move outcomes
// are deterministic regardless of the seeded tiles.
func installGrid(t *testing.T, sessions *MockSessionManager, sessionID string, grid [][]int) {
	t.Helper()
	sess, err := sessions.Get(sessionID)
	if err != nil {
		t.Fatalf("Failed to fetch session %s: %v", sessionID, err)
	}
	if err := sess.Engine.SetState(&engine.GameState{Grid: grid, ConfigName: "test"}); err != nil {
		t.Fatalf("Failed to install grid: %v", err)
	}
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	tests := []struct {
		name       string
		configName string
		wantErr    bool
	}{
		{
			name:       "create with default config",
			configName: "",
			wantErr:    false,
		},
		{
			name:       "create with specific config",
			configName: "big",
			wantErr:    false,
		},
		{
			name:       "create with invalid config",
			configName: "nonexistent",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "Available configs") {
					t.Errorf("Expected error to list available configs, got %v", err)
				}
				return
			}
			if session == nil {
				t.Fatal("CreateSession() returned nil session")
			}
			if session.GameState == nil {
				t.Error("CreateSession() returned session without game state")
			}
		})
	}

	// The default session uses the default config and reports its config_id
	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession() with default config failed: %v", err)
	}
	if info.ConfigName != "test" {
		t.Errorf("Expected config_name 'test' for default session, got %q", info.ConfigName)
	}
	if got := engine.CountTiles(info.GameState.Grid); got != 2 {
		t.Errorf("Expected 2 seeded tiles, got %d", got)
	}
}

func TestGameService_Move(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	tests := []struct {
		name      string
		sessionID string
		direction string
		wantErr   bool
	}{
		{
			name:      "valid move",
			sessionID: sessionInfo.ID,
			direction: "left",
			wantErr:   false,
		},
		{
			name:      "invalid session",
			sessionID: "nonexistent",
			direction: "up",
			wantErr:   true,
		},
		{
			name:      "invalid direction",
			sessionID: sessionInfo.ID,
			direction: "diagonal",
			wantErr:   true,
		},
		{
			name:      "direction is case sensitive",
			sessionID: sessionInfo.ID,
			direction: "UP",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Move(ctx, tt.sessionID, tt.direction)
			if (err != nil) != tt.wantErr {
				t.Errorf("Move() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && result == nil {
				t.Error("Move() returned nil result")
			}
		})
	}

	// Deterministic outcome: a merging move reports the gained points
	installGrid(t, sessions, sessionInfo.ID, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
	})
	res, err := svc.Move(ctx, sessionInfo.ID, "left")
	if err != nil {
		t.Fatalf("Move left failed unexpectedly: %v", err)
	}
	if !res.Moved {
		t.Error("Expected merging move to report moved=true")
	}
	if res.ScoreDelta != 4 {
		t.Errorf("Expected score delta 4, got %d", res.ScoreDelta)
	}
	if res.Direction != "left" {
		t.Errorf("Expected direction 'left', got %q", res.Direction)
	}
	if res.GameState.Grid[0][0] != 4 {
		t.Errorf("Expected merged 4 at top-left, got %d", res.GameState.Grid[0][0])
	}
	if len(res.Events) != 1 || res.Events[0].Type != "move" {
		t.Errorf("Expected a single move event, got %+v", res.Events)
	}

	// A move that changes nothing reports moved=false with no events
	installGrid(t, sessions, sessionInfo.ID, [][]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
	})
	res, err = svc.Move(ctx, sessionInfo.ID, "left")
	if err != nil {
		t.Fatalf("Ineffective move failed unexpectedly: %v", err)
	}
	if res.Moved {
		t.Error("Expected ineffective move to report moved=false")
	}
	if res.ScoreDelta != 0 {
		t.Errorf("Expected score delta 0, got %d", res.ScoreDelta)
	}
	if len(res.Events) != 0 {
		t.Errorf("Expected no events for ineffective move, got %+v", res.Events)
	}
}

func TestGameService_MoveEmitsWonEvent(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	installGrid(t, sessions, sessionInfo.ID, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := svc.Move(ctx, sessionInfo.ID, "left")
	if err != nil {
		t.Fatalf("Winning move failed unexpectedly: %v", err)
	}
	if !res.GameState.Won {
		t.Error("Expected state to be marked won")
	}
	if res.GameState.GameOver {
		t.Error("Winning should not end the game")
	}

	var won bool
	for _, ev := range res.Events {
		if ev.Type == "won" {
			won = true
			if !strings.Contains(ev.Message, "2048") {
				t.Errorf("Expected won message to name the tile, got %q", ev.Message)
			}
		}
	}
	if !won {
		t.Errorf("Expected a won event, got %+v", res.Events)
	}

	// The won event fires only on the transition
	res, err = svc.Move(ctx, sessionInfo.ID, "down")
	if err != nil {
		t.Fatalf("Follow-up move failed unexpectedly: %v", err)
	}
	for _, ev := range res.Events {
		if ev.Type == "won" {
			t.Error("Won event should not repeat after the winning move")
		}
	}
}

func TestGameService_MoveEmitsGameOverEvent(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// One hole left: the forced spawn completes a checkerboard with no merges
	installGrid(t, sessions, sessionInfo.ID, [][]int{
		{4, 2, 4, 0},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	res, err := svc.Move(ctx, sessionInfo.ID, "right")
	if err != nil {
		t.Fatalf("Final move failed unexpectedly: %v", err)
	}
	if !res.Moved {
		t.Fatal("Expected the final move to be effective")
	}
	if !res.GameState.GameOver {
		t.Fatal("Expected game over after the board locked")
	}

	var over bool
	for _, ev := range res.Events {
		if ev.Type == "game_over" {
			over = true
		}
	}
	if !over {
		t.Errorf("Expected a game_over event, got %+v", res.Events)
	}

	// Moves after game over are rejected without error
	res, err = svc.Move(ctx, sessionInfo.ID, "left")
	if err != nil {
		t.Fatalf("Post-game-over move errored: %v", err)
	}
	if res.Moved {
		t.Error("Expected moves to be rejected after game over")
	}
	if len(res.Events) != 0 {
		t.Errorf("Expected no events after game over, got %+v", res.Events)
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Play a bit so reset has something to clear
	installGrid(t, sessions, sessionInfo.ID, [][]int{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if _, err := svc.Move(ctx, sessionInfo.ID, "left"); err != nil {
		t.Fatalf("Failed to move: %v", err)
	}

	state, err := svc.Reset(ctx, sessionInfo.ID)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state == nil {
		t.Fatal("Reset() returned nil state")
	}
	if state.Score != 0 || state.MoveCount != 0 {
		t.Errorf("Expected zeroed score and move count, got score=%d moves=%d", state.Score, state.MoveCount)
	}
	if got := engine.CountTiles(state.Grid); got != 2 {
		t.Errorf("Expected 2 seeded tiles after reset, got %d", got)
	}

	if _, err := svc.Reset(ctx, "nonexistent"); err == nil {
		t.Error("Expected error resetting unknown session")
	}
}

func TestGameService_GetSession(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "big")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	got, err := svc.GetSession(ctx, sessionInfo.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.ID != sessionInfo.ID {
		t.Errorf("Expected session ID %s, got %s", sessionInfo.ID, got.ID)
	}
	if got.ConfigName != "big" {
		t.Errorf("Expected config_name 'big', got %q", got.ConfigName)
	}
	if len(got.GameState.Grid) != 5 || len(got.GameState.Grid[0]) != 6 {
		t.Errorf("Expected 5x6 grid, got %dx%d", len(got.GameState.Grid), len(got.GameState.Grid[0]))
	}

	if _, err := svc.GetSession(ctx, "nonexistent"); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestGameService_ListSessions(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(ctx, "test")
		if err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
	}

	sessionList, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}

	if len(sessionList) != 3 {
		t.Errorf("ListSessions() returned %d sessions, want 3", len(sessionList))
	}
}

func TestGameService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if err := svc.DeleteSession(ctx, sessionInfo.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, err := svc.GetSession(ctx, sessionInfo.ID); err == nil {
		t.Error("Expected deleted session to be gone")
	}
	if err := svc.DeleteSession(ctx, sessionInfo.ID); err == nil {
		t.Error("Expected error deleting session twice")
	}
}

func TestGameService_GetGameState(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	sessionInfo, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	state, err := svc.GetGameState(ctx, sessionInfo.ID)
	if err != nil {
		t.Fatalf("GetGameState() error = %v", err)
	}
	if len(state.Grid) != 4 || len(state.Grid[0]) != 4 {
		t.Errorf("Expected 4x4 grid, got %dx%d", len(state.Grid), len(state.Grid[0]))
	}

	if _, err := svc.GetGameState(ctx, "nonexistent"); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestGameService_ConfigOperations(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	list, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("ListConfigs() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(list))
	}
	for _, info := range list {
		if info.ConfigID == "test" && info.WinTile != 2048 {
			t.Errorf("Expected win tile 2048 for test config, got %d", info.WinTile)
		}
	}

	cfg, err := svc.LoadConfig(ctx, "big")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Name != "big" {
		t.Errorf("Expected config 'big', got %q", cfg.Name)
	}

	custom := &engine.GameConfig{
		Name:         "custom",
		Description:  "Saved by test",
		Rows:         4,
		Cols:         4,
		InitialTiles: 2,
		FourChance:   0.1,
		WinTile:      1024,
	}
	if err := svc.SaveConfig(ctx, "custom", custom); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	loaded, err := svc.LoadConfig(ctx, "custom")
	if err != nil {
		t.Fatalf("LoadConfig() after save error = %v", err)
	}
	if loaded.WinTile != 1024 {
		t.Errorf("Expected saved win tile 1024, got %d", loaded.WinTile)
	}
}
