package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	LinkColor   = "#87CEEB"
	AccentColor = "#FF7A00"
)

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: shouldEnableColor(output, mode, disableColor),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	u.line(u.Err, u.ErrOutput, "1", format, args...)
}

func (u *UI) Warnf(format string, args ...any) {
	u.line(u.Err, u.ErrOutput, "3", format, args...)
}

func (u *UI) Infof(format string, args ...any) {
	u.line(u.Out, u.Output, "4", format, args...)
}

func (u *UI) Successf(format string, args ...any) {
	u.line(u.Out, u.Output, "2", format, args...)
}

// Notify prints a modal-style notice: a bold title line followed by the
// message. An empty title prints the message alone.
func (u *UI) Notify(title, message string) {
	if strings.TrimSpace(title) != "" {
		heading := "[" + title + "]"
		if u.ColorEnabled {
			heading = u.Output.String(heading).Bold().Foreground(u.Output.Color(AccentColor)).String()
		}
		fmt.Fprintln(u.Out, heading)
	}
	u.Warnf("%s", message)
}

func (u *UI) line(w io.Writer, output *termenv.Output, color string, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if u.ColorEnabled {
		msg = output.String(msg).Foreground(output.Color(color)).String()
	}
	fmt.Fprintln(w, msg)
}

func ColorizeLink(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(LinkColor)).String()
}

func (u *UI) LinkText(text string) string {
	return ColorizeLink(u.Output, u.ColorEnabled, text)
}

func NormalizeColorMode(value string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}

func IsTTY(out io.Writer) bool {
	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}

// Spinner redraws one status line on w until stopped.
type Spinner struct {
	w       io.Writer
	label   string
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// StartSpinner returns nil when w is not a terminal.
func StartSpinner(w io.Writer, label string) *Spinner {
	if w == nil || !IsTTY(w) {
		return nil
	}
	s := &Spinner{
		w:       w,
		label:   label,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.stopped)
	start := time.Now()
	frames := []string{"|", "/", "-", "\\"}
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()

	for index := 0; ; index++ {
		select {
		case <-s.done:
			fmt.Fprint(s.w, "\r\033[2K")
			return
		case <-ticker.C:
			seconds := int(time.Since(start).Seconds())
			fmt.Fprintf(s.w, "\r\033[2K%s %ds %s", s.label, seconds, frames[index%len(frames)])
		}
	}
}

// Stop clears the line. It is safe on a nil Spinner and idempotent.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.done)
		<-s.stopped
	})
}
