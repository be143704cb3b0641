package render

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

const (
	// FetchingMessage labels the fetch tracker
	FetchingMessage = "Fetching news..."

	progressUpdateFrequency = 50 * time.Millisecond
)

// Tracker reports progress of one blocking step.
type Tracker interface {
	// Track starts tracking message and returns the function that marks it
	// done. The returned function blocks until the final frame is drawn.
	Track(message string) (done func())
}

// ProgressTracker draws a go-pretty progress bar on its own writer, normally
// stderr so stdout carries only tables.
type ProgressTracker struct {
	out io.Writer
}

// Ensure ProgressTracker implements Tracker
var _ Tracker = (*ProgressTracker)(nil)

// NewProgressTracker creates a ProgressTracker writing to out.
func NewProgressTracker(out io.Writer) *ProgressTracker {
	return &ProgressTracker{out: out}
}

// Track implements Tracker.
func (p *ProgressTracker) Track(message string) func() {
	pw := progress.NewWriter()
	pw.SetOutputWriter(p.out)
	pw.SetAutoStop(true)
	pw.SetUpdateFrequency(progressUpdateFrequency)
	pw.SetStyle(progress.StyleDefault)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Speed = false
	pw.Style().Visibility.Value = false

	tracker := &progress.Tracker{Message: message, Total: 1}
	pw.AppendTracker(tracker)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		pw.Render()
	}()

	return func() {
		tracker.Increment(1)
		tracker.MarkAsDone()
		<-finished
	}
}

// NoopTracker tracks nothing.
type NoopTracker struct{}

// Track implements Tracker.
func (NoopTracker) Track(string) func() { return func() {} }
