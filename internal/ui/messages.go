package ui

// clearStatusMsg asks to hide the status message of the given generation
type clearStatusMsg struct {
	generation uint64
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
