package core

// Color identifies the role of a screen cell. The platform layer maps each
// role to a terminal style, so games never deal with escape codes.
type Color uint8

// Colors for snake board elements.
const (
	ColorDefault Color = iota
	ColorBoard         // empty playfield cell
	ColorBorder        // playfield frame
	ColorSnake         // body segment
	ColorSnakeHead     // head segment
	ColorFood          // food arc
	ColorHUD           // status line
	ColorOverlay       // message boxes
)
