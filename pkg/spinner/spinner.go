// Package spinner provides terminal activity indicators for long-running
// operations: an animated spinner for calls of unknown duration and a
// progress bar for batches with a known item count. Both degrade to plain
// line-per-update output when the writer is not a terminal.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
	carriageReturn = "\r"

	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"

	symbolSuccess = "✓"
	symbolFailure = "✗"
)

// frames is the braille animation cycle.
var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const refreshRate = 80 * time.Millisecond

// Spinner animates a single-line activity indicator. All methods are safe
// for concurrent use; Start and Stop are idempotent.
type Spinner struct {
	mu      sync.Mutex
	out     io.Writer
	message string
	isTTY   bool

	active   bool
	started  time.Time
	frame    int
	lastLen  int
	stopCh   chan struct{}
	stopDone chan struct{}
}

// New creates a spinner writing to stderr.
func New(message string) *Spinner {
	return NewWriter(message, os.Stderr)
}

// NewWriter creates a spinner writing to w. Animation is enabled only when
// w is a terminal.
func NewWriter(message string, w io.Writer) *Spinner {
	return &Spinner{out: w, message: message, isTTY: isTerminalWriter(w)}
}

func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Start begins the animation. In non-TTY mode it prints the message once.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.started = time.Now()
	s.frame = 0

	if !s.isTTY {
		fmt.Fprintf(s.out, "%s...\n", s.message)
		return
	}

	fmt.Fprint(s.out, hideCursor)
	s.stopCh = make(chan struct{})
	s.stopDone = make(chan struct{})
	go s.spin(s.stopCh, s.stopDone)
}

func (s *Spinner) spin(stop, done chan struct{}) {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	s.render()
	for {
		select {
		case <-stop:
			close(done)
			return
		case <-ticker.C:
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	char := frames[s.frame%len(frames)]
	s.frame++
	s.rewrite(fmt.Sprintf("%s %s %s", char, s.message, formatElapsed(time.Since(s.started))))
}

// rewrite replaces the current line. Caller holds the mutex.
func (s *Spinner) rewrite(line string) {
	if s.lastLen > 0 {
		fmt.Fprint(s.out, carriageReturn+strings.Repeat(" ", s.lastLen)+carriageReturn)
	}
	fmt.Fprint(s.out, line)
	s.lastLen = len(line)
}

// clear erases the spinner line. Caller holds the mutex.
func (s *Spinner) clear() {
	if s.lastLen > 0 {
		fmt.Fprint(s.out, carriageReturn+strings.Repeat(" ", s.lastLen)+carriageReturn)
		s.lastLen = 0
	}
}

// Update changes the message while the spinner runs.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// IsActive reports whether the spinner is running.
func (s *Spinner) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Stop halts the animation and clears the line. It blocks until the
// animation goroutine has exited.
func (s *Spinner) Stop() {
	s.halt(func() {})
}

// Success stops the spinner and prints a green check with the message.
// An empty message reuses the spinner's current one.
func (s *Spinner) Success(message string) {
	s.finish(message, symbolSuccess, colorGreen)
}

// Fail stops the spinner and prints a red cross with the message.
func (s *Spinner) Fail(message string) {
	s.finish(message, symbolFailure, colorRed)
}

// halt stops the animation goroutine, then runs fn with the mutex held and
// the line cleared.
func (s *Spinner) halt(fn func()) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	stop, done := s.stopCh, s.stopDone
	tty := s.isTTY
	s.mu.Unlock()

	if tty {
		close(stop)
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tty {
		s.clear()
		fmt.Fprint(s.out, showCursor)
	}
	fn()
}

func (s *Spinner) finish(message, symbol, color string) {
	s.mu.Lock()
	elapsed := time.Since(s.started)
	if message == "" {
		message = s.message
	}
	s.mu.Unlock()

	s.halt(func() {
		if s.isTTY {
			fmt.Fprintf(s.out, "%s%s%s %s %s\n", color, symbol, colorReset, message, formatElapsed(elapsed))
		} else {
			fmt.Fprintf(s.out, "%s %s %s\n", symbol, message, formatElapsed(elapsed))
		}
	})
}

// formatElapsed renders a duration as "(1.2s)" or "(1m 30s)".
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("(%.1fs)", d.Seconds())
	}
	return fmt.Sprintf("(%dm %ds)", int(d.Minutes()), int(d.Seconds())%60)
}
