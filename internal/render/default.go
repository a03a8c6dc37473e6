package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// DefaultRenderer draws with ANSI escapes. Everything written in a frame is
// buffered and flushed to Out in one write at the end of the frame.
type DefaultRenderer struct {
	Out io.Writer
	Fd  int // terminal file descriptor, -1 when Out is not a terminal

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

func New(out io.Writer, fd int) *DefaultRenderer {
	return &DefaultRenderer{Out: out, Fd: fd}
}

func (r *DefaultRenderer) Init() error {
	if r.Fd >= 0 {
		state, err := term.MakeRaw(r.Fd)
		if nil != err {
			return fmt.Errorf("unable to make terminal raw: %w", err)
		}
		r.restoreState = state
	}

	_, err := fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	if _, err := fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	); nil != err {
		return err
	}
	if r.restoreState == nil {
		return nil
	}
	return term.Restore(r.Fd, r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int, error) {
	if r.Fd < 0 {
		return 80, 24, nil
	}
	columns, rows, err := term.GetSize(r.Fd)
	if nil != err {
		return 0, 0, fmt.Errorf("unable to get terminal size: %w", err)
	}
	return columns, rows, nil
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, " ")
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per frame period until it returns false. The
// first frame is drawn after delay.
func (r *DefaultRenderer) RenderLoop(
	delay, framePeriod time.Duration,
	render func(now time.Time) bool,
) {
	time.Sleep(delay)
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(framePeriod)

		cont = render(now)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) ClearRow(row uint16) {
	r.moveTo(row, 1)
	r.buffer.WriteString("\033[2K")
}

func (r *DefaultRenderer) moveTo(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) flush() {
	_, _ = io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
}
