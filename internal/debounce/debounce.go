package debounce

import (
	"sync"
	"time"
)

// New returns a function that postpones calls to fn until delay has elapsed
// since the last invocation, so only the last keystroke within the window
// triggers a request.
func New(delay time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, fn)
	}
}
