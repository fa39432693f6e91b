// Package voice fakes the storefront's voice search: after a short
// "listening" delay it always recognizes the same query. There is no real
// speech recognition behind it.
package voice

import (
	"context"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// DefaultListenDelay is how long the fake recognizer "listens".
const DefaultListenDelay = 2 * time.Second

const recognizedRU = "смартфон"
const recognizedEN = "smartphone"

// Simulate waits for the listen delay and returns the recognized search
// term for the given language. Cancelling the context aborts the wait.
func Simulate(ctx context.Context, lang domain.Language, delay time.Duration) (string, error) {
	if delay <= 0 {
		delay = DefaultListenDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if lang == domain.LangEN {
		return recognizedEN, nil
	}
	return recognizedRU, nil
}
