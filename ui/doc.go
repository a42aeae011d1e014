// Package ui implements the Ebitengine desktop client.
//
// The client renders one session of the merge puzzle: a header with score,
// move count and best tile, the tile grid, and a footer with key hints. Input
// is keyboard only. Arrow keys and WASD slide the board, R restarts (Enter
// does too once the game is over), Escape quits. Winning shows a banner that
// C dismisses to keep playing.
//
// The app holds no game rules. Every key press becomes a GameService call and
// the returned state is what gets drawn, so the window shows exactly what the
// service knows.
package ui
