package logic

// Navigator moves a cursor over a flat list of rows
type Navigator struct {
	pageSize int
}

// NewNavigator creates a navigator that pages by pageSize rows
func NewNavigator(pageSize int) *Navigator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Navigator{pageSize: pageSize}
}

// SetPageSize updates the page size, typically after a resize
func (n *Navigator) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	n.pageSize = size
}

// Move returns the cursor after applying direction. Unknown directions leave it in place.
func (n *Navigator) Move(current, total int, direction string) int {
	switch direction {
	case "up":
		current--
	case "down":
		current++
	case "pageup":
		current -= n.pageSize
	case "pagedown":
		current += n.pageSize
	case "home":
		current = 0
	case "end":
		current = total - 1
	}
	return Clamp(current, total)
}

// Clamp keeps the cursor inside [0, total). An empty list yields 0.
func Clamp(current, total int) int {
	if total <= 0 || current < 0 {
		return 0
	}
	if current >= total {
		return total - 1
	}
	return current
}
