package utils

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner initializes the progress indicator.
type Spinner struct {
	mu         sync.Mutex
	wg         sync.WaitGroup
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	hideCursor bool
	running    bool
	stopChan   chan struct{}
}

// NewSpinner instantiates a new progress indicator writing into w.
func NewSpinner(w io.Writer, msg string, d time.Duration) *Spinner {
	return &Spinner{
		delay:      d,
		writer:     w,
		message:    msg,
		hideCursor: true,
	}
}

// SetMessage replaces the text shown in front of the spinning glyph.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = msg
}

// Start starts the progress indicator. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})

	if s.ansi() {
		// hides the cursor
		fmt.Fprint(s.writer, "\033[?25l")
	}

	s.wg.Add(1)
	go func(stop <-chan struct{}) {
		defer s.wg.Done()
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-stop:
					return
				default:
				}

				s.mu.Lock()
				output := fmt.Sprintf("\r%s %s", s.message, DecorateText(string(r), SuccessMessage))
				fmt.Fprint(s.writer, output)
				s.lastOutput = output
				s.mu.Unlock()

				select {
				case <-stop:
					return
				case <-time.After(s.delay):
				}
			}
		}
	}(s.stopChan)
}

// Stop stops the progress indicator and prints the StopMsg, if any.
// It waits for the spinning goroutine, so nothing is written after it returns.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.RestoreCursor()
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}

// RestoreCursor restores back the cursor visibility.
func (s *Spinner) RestoreCursor() {
	if s.ansi() {
		// makes the cursor visible
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the locker.
func (s *Spinner) clear() {
	if s.lastOutput == "" {
		return
	}
	n := utf8.RuneCountInString(s.lastOutput)
	if runtime.GOOS == "windows" || !ColorOutput() {
		clearString := "\r" + strings.Repeat(" ", n) + "\r"
		fmt.Fprint(s.writer, clearString)
		s.lastOutput = ""
		return
	}
	fmt.Fprint(s.writer, "\r\033[K") // clear line
	s.lastOutput = ""
}

// ansi reports whether the cursor can be driven with escape sequences.
// They are sent only along with the colored output.
func (s *Spinner) ansi() bool {
	return s.hideCursor && ColorOutput() && runtime.GOOS != "windows"
}
