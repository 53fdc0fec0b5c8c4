// Package spinning provides a friendly spinning clock (or some other spinning symbols),
// along with the elapsed time, to use while the AI is thinking about its move.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// Spinning display, see New.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
	start  time.Time
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeClock, but it can be set to anything else.
	Theme = ThemeClock

	// Output where the spinning symbol is displayed.
	Output io.Writer = os.Stdout

	// Interval between updates of the display.
	Interval = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		_, _ = fmt.Fprintln(Output)
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	_, _ = fmt.Fprint(Output, "\033[?25h\033[39;49;0m\n") // Restore cursor and colors.
}

// New starts a spinning display that runs on a separate GoRoutine.
// It shows the symbol of the Theme followed by the seconds elapsed, and it stops when Spinning.Done
// is called or the context is cancelled.
func New(ctx context.Context) *Spinning {
	s := &Spinning{start: time.Now()}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		_, _ = fmt.Fprint(Output, "\033[?25l") // Hide cursor.
		defer fmt.Fprint(Output, "\033[?25h")  // Restore cursor.

		var idx, lastWidth int
		for {
			text := fmt.Sprintf("%c %4.1fs", Theme[idx], time.Since(s.start).Seconds())
			idx = (idx + 1) % len(Theme)
			erase(lastWidth)
			_, _ = fmt.Fprint(Output, text)
			lastWidth = len([]rune(text))
			select {
			case <-ctx.Done():
				erase(lastWidth)
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// erase the last width characters printed, with the cursor moving back to where they started.
func erase(width int) {
	if width == 0 {
		return
	}
	_, _ = fmt.Fprintf(Output, "\033[%dD\033[0K", width)
}

// Elapsed returns the time since the spinning started.
func (s *Spinning) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Done stops the spinning display and erases it. It returns the time elapsed since it started.
func (s *Spinning) Done() time.Duration {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
	return s.Elapsed()
}
