package movemode

// NavigateWindow cycles through count windows. Down and right select the
// next one, up and left the previous one, wrapping at both ends.
func NavigateWindow(currentIdx int, dir Direction, count int) int {
	if count <= 0 {
		return 0
	}
	if currentIdx < 0 || currentIdx >= count {
		return 0
	}
	switch dir {
	case DirDown, DirRight:
		return (currentIdx + 1) % count
	case DirUp, DirLeft:
		return (currentIdx - 1 + count) % count
	}
	return currentIdx
}

// ParseKey maps a key name to an arrow direction. Vim keys are accepted too.
func ParseKey(key string) (Direction, bool) {
	switch key {
	case "up", "k":
		return DirUp, true
	case "down", "j":
		return DirDown, true
	case "left", "h":
		return DirLeft, true
	case "right", "l":
		return DirRight, true
	}
	return 0, false
}
