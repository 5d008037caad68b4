package engine

// Key identifiers follow the KeyboardEvent.code names.
const (
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowRight = "ArrowRight"
	CodeArrowUp    = "ArrowUp"
	CodeArrowDown  = "ArrowDown"
	CodeSpace      = "Space"
	CodeEnter      = "Enter"
	CodeEscape     = "Escape"
)
