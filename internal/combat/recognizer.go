package combat

// #region imports
import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// #endregion

// #region recognizer

const defaultPollInterval = 300 * time.Millisecond

// Recognizer resolves which battle state is on screen by matching the
// candidate signatures against fresh frames.
type Recognizer struct {
	dev     Device
	matcher Matcher
	mode    Mode
	log     zerolog.Logger

	// poll interval override, tests shrink it
	interval time.Duration
}

// NewRecognizer builds a recognizer for one battle mode.
func NewRecognizer(dev Device, matcher Matcher, mode Mode, log zerolog.Logger) *Recognizer {
	return &Recognizer{
		dev:      dev,
		matcher:  matcher,
		mode:     mode,
		log:      log.With().Str("component", "recognizer").Logger(),
		interval: defaultPollInterval,
	}
}

// Identify matches each candidate signature against the frame and
// returns the first hit in candidate order.
func (r *Recognizer) Identify(ctx context.Context, frame []byte, candidates []State) (State, bool, error) {
	for _, s := range candidates {
		sig := signatureFor(r.mode, s)
		hit, conf, err := r.matcher.Match(ctx, frame, sig.TemplateKey, sig.Confidence)
		if err != nil {
			return "", false, fmt.Errorf("match %s: %w", sig.TemplateKey, err)
		}
		if hit {
			r.log.Debug().Str("state", string(s)).Float32("confidence", conf).Msg("state identified")
			return s, true, nil
		}
	}
	return "", false, nil
}

// WaitFor polls until one of the candidate states appears. The wait
// budget is the largest of the candidate timeouts, target overrides
// included, so a slow candidate never starves a fast one. Matching
// runs each candidate at the lowest confidence floor among them and
// candidate order breaks ties. beforePoll, when set, runs before each
// screenshot; the engine uses it to keep the speed-up button pressed
// during animations.
func (r *Recognizer) WaitFor(ctx context.Context, node string, targets []Target, beforePoll func(context.Context) error) (State, error) {
	budget := time.Duration(0)
	floor := float32(1.0)
	states := make([]State, 0, len(targets))
	for _, t := range targets {
		sig := signatureFor(r.mode, t.State)
		to := sig.Timeout
		if t.Timeout > 0 {
			to = t.Timeout
		}
		if to > budget {
			budget = to
		}
		if sig.Confidence < floor {
			floor = sig.Confidence
		}
		states = append(states, t.State)
	}

	deadline := time.Now().Add(budget)
	for {
		if beforePoll != nil {
			if err := beforePoll(ctx); err != nil {
				return "", err
			}
		}
		frame, err := r.dev.Screenshot(ctx)
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		for _, s := range states {
			sig := signatureFor(r.mode, s)
			hit, _, err := r.matcher.Match(ctx, frame, sig.TemplateKey, floor)
			if err != nil {
				return "", fmt.Errorf("match %s: %w", sig.TemplateKey, err)
			}
			if hit {
				if sig.AfterMatchDelay > 0 {
					if err := sleep(ctx, sig.AfterMatchDelay); err != nil {
						return "", err
					}
				}
				return s, nil
			}
		}
		if time.Now().After(deadline) {
			return "", &StateTimeoutError{Node: node, Expected: states, Timeout: budget}
		}
		if err := sleep(ctx, r.interval); err != nil {
			return "", err
		}
	}
}

// Probe takes one screenshot and checks only the given state. Used by
// timeout recovery to tell "battle already over" from a real hang.
func (r *Recognizer) Probe(ctx context.Context, s State) (bool, error) {
	frame, err := r.dev.Screenshot(ctx)
	if err != nil {
		return false, fmt.Errorf("screenshot: %w", err)
	}
	sig := signatureFor(r.mode, s)
	hit, _, err := r.matcher.Match(ctx, frame, sig.TemplateKey, sig.Confidence)
	if err != nil {
		return false, fmt.Errorf("match %s: %w", sig.TemplateKey, err)
	}
	return hit, nil
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// #endregion
