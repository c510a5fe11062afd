package tui

// PaneDimensions holds calculated dimensions for the picker layout
type PaneDimensions struct {
	// Left pane (range input and calendar)
	InputWidth int

	// Right pane (shortcuts)
	ShortcutsWidth int

	// Shared height for both panes
	PaneHeight int

	// Bottom bars
	TitleHeight  int // Fixed: 1 line
	StatusHeight int // Fixed: 1 line
}

// CalculatePaneDimensions computes pane sizes based on terminal
// dimensions. The input pane takes 60% of the width, the shortcut pane
// the remainder, so the two always sum to the full terminal width.
func CalculatePaneDimensions(termWidth, termHeight int) PaneDimensions {
	dims := PaneDimensions{
		TitleHeight:  1,
		StatusHeight: 1,
	}

	availableHeight := termHeight - dims.TitleHeight - dims.StatusHeight
	if availableHeight < 0 {
		availableHeight = 0
	}
	dims.PaneHeight = availableHeight

	dims.InputWidth = int(float64(termWidth) * 0.60)
	dims.ShortcutsWidth = termWidth - dims.InputWidth

	if dims.InputWidth < 0 {
		dims.InputWidth = 0
	}
	if dims.ShortcutsWidth < 0 {
		dims.ShortcutsWidth = 0
	}

	return dims
}
