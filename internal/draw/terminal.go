package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI control sequences used outside the canvas renderer.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Align selects how a text anchor column is interpreted.
type Align int

const (
	AlignLeft   Align = iota // Text starts at the anchor
	AlignCenter              // Text is centered on the anchor
	AlignRight               // Text ends at the anchor
)

// ChunkWriter collects one frame of terminal output (canvas cells and HUD
// text) and sends it to the underlying writer in network-sized chunks on Flush.
// Text positions are 1-based canvas cells; the canvas offset is added on write.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w with the given canvas offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the canvas offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// Write implements io.Writer for Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// ClearFrame queues a full terminal clear ahead of the rest of the frame.
func (cw *ChunkWriter) ClearFrame() {
	cw.buf.WriteString(seqClear)
}

// Text places s on row relative to the anchor column col.
func (cw *ChunkWriter) Text(col, row int, align Align, s string) {
	switch align {
	case AlignCenter:
		col -= utf8.RuneCountInString(s) / 2
	case AlignRight:
		col -= utf8.RuneCountInString(s) - 1
	}
	cw.moveTo(col, row)
	cw.buf.WriteString(s)
}

// TextBlock places lines one per row starting at row, centered as a block on
// col so ragged lines keep their relative indentation.
func (cw *ChunkWriter) TextBlock(col, row int, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	for i, line := range lines {
		cw.Text(col-width/2, row+i, AlignLeft, line)
	}
}

func (cw *ChunkWriter) moveTo(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Flush sends the frame in maxChunkSize pieces and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.bufw.WriteString(data[:n]); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
		data = data[n:]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalSize calls sizeFunc and wraps its error.
func TerminalSize(sizeFunc TermSizeFunc) (width, height int, err error) {
	width, height, err = sizeFunc()
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
