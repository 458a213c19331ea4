package state

// Rows not available to the list: header, separator, search line, blank,
// separator, help, status.
const reservedLines = 8

// MinVisibleRows is the floor for the list height on tiny terminals.
const MinVisibleRows = 3

// ComputeViewport returns the scroll offset that keeps cursor visible and
// the exclusive end index of the visible window. Scrolling up catches the
// cursor; scrolling down keeps it as the last visible row. The function is
// idempotent: feeding its own output back yields the same result.
func ComputeViewport(cursor, scroll, maxVisible, total int) (int, int) {
	s := scroll
	if cursor < s {
		s = cursor
	} else if cursor >= s+maxVisible {
		s = cursor + 1 - maxVisible
	}
	end := s + maxVisible
	if end > total {
		end = total
	}
	return s, end
}

// MaxVisibleRows derives the list capacity from the terminal height.
func MaxVisibleRows(termHeight int) int {
	rows := termHeight - reservedLines
	if rows < MinVisibleRows {
		rows = MinVisibleRows
	}
	return rows
}
