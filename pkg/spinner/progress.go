package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	barFilled = "█"
	barEmpty  = "░"
	barWidth  = 20
)

// ProgressBar tracks a batch with a known item count, rendered as
// "Message [████░░░░] 40% (2/5) (1.2s)". In non-TTY mode each update
// prints on its own line instead of redrawing.
type ProgressBar struct {
	mu      sync.Mutex
	out     io.Writer
	message string
	total   int
	isTTY   bool

	active  bool
	current int
	started time.Time
	lastLen int
}

// NewProgress creates a progress bar over total items, writing to stderr.
func NewProgress(total int, message string) *ProgressBar {
	return NewProgressWriter(total, message, os.Stderr)
}

// NewProgressWriter creates a progress bar writing to w.
func NewProgressWriter(total int, message string, w io.Writer) *ProgressBar {
	if total <= 0 {
		total = 1
	}
	return &ProgressBar{out: w, message: message, total: total, isTTY: isTerminalWriter(w)}
}

// Current returns the completed item count.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Total returns the item count the bar was created with.
func (p *ProgressBar) Total() int {
	return p.total
}

// Start resets the bar and draws the empty state.
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		return
	}
	p.active = true
	p.started = time.Now()
	p.current = 0

	if p.isTTY {
		fmt.Fprint(p.out, hideCursor)
	}
	p.draw()
}

// Increment advances progress by one item, clamped at the total.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	if p.current < p.total {
		p.current++
	}
	p.draw()
}

// draw renders the current state. Caller holds the mutex.
func (p *ProgressBar) draw() {
	line := p.line()
	if p.isTTY {
		if p.lastLen > 0 {
			fmt.Fprint(p.out, carriageReturn+strings.Repeat(" ", p.lastLen)+carriageReturn)
		}
		fmt.Fprint(p.out, line)
		p.lastLen = len(line)
		return
	}
	fmt.Fprintln(p.out, line)
}

func (p *ProgressBar) line() string {
	filled := p.current * barWidth / p.total
	bar := "[" + strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barWidth-filled) + "]"
	pct := p.current * 100 / p.total
	return fmt.Sprintf("%s %s %d%% (%d/%d) %s",
		p.message, bar, pct, p.current, p.total, formatElapsed(time.Since(p.started)))
}

// Complete stops the bar and prints a green check with the message.
func (p *ProgressBar) Complete(message string) {
	p.finish(message, symbolSuccess, colorGreen)
}

// Fail stops the bar and prints a red cross with the message.
func (p *ProgressBar) Fail(message string) {
	p.finish(message, symbolFailure, colorRed)
}

func (p *ProgressBar) finish(message, symbol, color string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	p.active = false
	if message == "" {
		message = p.message + " complete"
	}

	elapsed := formatElapsed(time.Since(p.started))
	if p.isTTY {
		if p.lastLen > 0 {
			fmt.Fprint(p.out, carriageReturn+strings.Repeat(" ", p.lastLen)+carriageReturn)
			p.lastLen = 0
		}
		fmt.Fprint(p.out, showCursor)
		fmt.Fprintf(p.out, "%s%s%s %s %s\n", color, symbol, colorReset, message, elapsed)
		return
	}
	fmt.Fprintf(p.out, "%s %s %s\n", symbol, message, elapsed)
}
