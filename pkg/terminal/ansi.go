package terminal

import "strconv"

const (
	// SaveCursor is DECSC.
	SaveCursor = "\x1b7"
	// RestoreCursor is DECRC.
	RestoreCursor = "\x1b8"
)

// Move returns the escape sequence placing the cursor at column x, line y,
// both 0-indexed.
func Move(x, y int) string {
	return string(AppendMove(nil, x, y))
}

// AppendMove appends the Move sequence to b.
func AppendMove(b []byte, x, y int) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(y+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x+1), 10)
	return append(b, 'H')
}
