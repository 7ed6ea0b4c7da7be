package render

// mouseTracker turns absolute cursor positions into per-event offsets
type mouseTracker struct {
	lastX      float64
	lastY      float64
	firstMouse bool
}

func newMouseTracker() *mouseTracker {
	return &mouseTracker{firstMouse: true}
}

// offset records the cursor position and returns the movement since the last
// sample. The first sample after a reset only seeds the position.
func (m *mouseTracker) offset(xpos, ypos float64) (xoffset, yoffset float64, ok bool) {
	if m.firstMouse {
		m.lastX = xpos
		m.lastY = ypos
		m.firstMouse = false
		return 0, 0, false
	}

	xoffset = xpos - m.lastX
	yoffset = m.lastY - ypos // Reversed: y ranges bottom to top

	m.lastX = xpos
	m.lastY = ypos

	return xoffset, yoffset, true
}

// reset re-arms the first-sample state, e.g. after the cursor is recaptured
func (m *mouseTracker) reset() {
	m.firstMouse = true
}
