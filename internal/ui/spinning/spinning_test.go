package spinning

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinning(t *testing.T) {
	var buf bytes.Buffer
	Output, Theme, Interval = &buf, ThemeAscii, time.Millisecond
	defer func() { Output, Theme, Interval = os.Stdout, ThemeClock, 250*time.Millisecond }()

	s := New(context.Background())
	time.Sleep(20 * time.Millisecond)
	elapsed := s.Done()
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	assert.Contains(t, buf.String(), "\033[?25l")
	assert.Contains(t, buf.String(), "|")
	assert.Contains(t, buf.String(), "s")
	assert.Contains(t, buf.String(), "\033[?25h")

	// Done can be called more than once.
	assert.GreaterOrEqual(t, s.Done(), elapsed)

	// Cancelling the context also stops it.
	buf.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	s = New(ctx)
	cancel()
	s.wg.Wait()
	assert.Contains(t, buf.String(), "\033[?25h")
}
