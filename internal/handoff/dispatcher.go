package handoff

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/browser"

	"fishbill/internal/platform/metrics"
)

// Plan is everything a dispatch needs: the message, where it goes, and the
// fallback arrangements for mobile targets.
type Plan struct {
	Message       string        `json:"message"`
	Target        Target        `json:"target"`
	PrimaryURL    string        `json:"primary_url"`
	FallbackURL   string        `json:"fallback_url,omitempty"`
	FallbackDelay time.Duration `json:"-"`
}

// Opener launches a URL in the user's browsing context.
type Opener func(url string) error

// Dispatcher performs a handoff: clipboard copy, open the primary URL, and
// on mobile arm a delayed web fallback.
//
// The fallback is a best-effort heuristic, not reliable detection: there is
// no way to observe whether the native scheme actually navigated away, so
// after the delay the web URL is opened unconditionally. The timer is
// cancellable: a new dispatch (or Close) stops the pending one so a second
// legitimate send cannot fire a stray duplicate.
type Dispatcher struct {
	opener   Opener
	primary  Clipboard
	fallback Clipboard
	logger   *slog.Logger
	metrics  *metrics.Metrics

	mu      sync.Mutex
	pending *time.Timer
}

type DispatcherOption func(*Dispatcher)

func WithOpener(opener Opener) DispatcherOption {
	return func(d *Dispatcher) {
		d.opener = opener
	}
}

func WithClipboards(primary, fallback Clipboard) DispatcherOption {
	return func(d *Dispatcher) {
		d.primary = primary
		d.fallback = fallback
	}
}

func WithDispatchLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		opener:   browser.OpenURL,
		primary:  SystemClipboard{},
		fallback: OSC52Clipboard{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch copies the message, opens the primary URL, and arms the mobile
// fallback. Clipboard failure never aborts the handoff; a URL-open failure
// does, since without it nothing reached the messaging app.
func (d *Dispatcher) Dispatch(ctx context.Context, plan *Plan) error {
	d.copyMessage(ctx, plan.Message)

	if err := d.opener(plan.PrimaryURL); err != nil {
		return err
	}

	if plan.Target == TargetMobile && plan.FallbackURL != "" {
		d.armFallback(ctx, plan)
	}
	return nil
}

// Cancel stops a pending fallback open, if any.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Close cancels outstanding timers; safe to call more than once.
func (d *Dispatcher) Close() error {
	d.Cancel()
	return nil
}

func (d *Dispatcher) armFallback(ctx context.Context, plan *Plan) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	fallbackURL := plan.FallbackURL
	d.pending = time.AfterFunc(plan.FallbackDelay, func() {
		if err := d.opener(fallbackURL); err != nil {
			d.logger.WarnContext(ctx, "fallback handoff open failed", "error", err)
		}
	})
}

// copyMessage tries the primary clipboard, then the legacy fallback. If both
// fail the failure is logged and swallowed: clipboard content is a
// convenience, not a precondition for opening the messaging link.
func (d *Dispatcher) copyMessage(ctx context.Context, message string) {
	err := d.primary.Write(message)
	if err == nil {
		return
	}
	d.logger.WarnContext(ctx, "primary clipboard failed, trying fallback", "error", err)
	if d.metrics != nil {
		d.metrics.ClipboardFallbacks.Inc()
	}

	if err := d.fallback.Write(message); err != nil {
		d.logger.WarnContext(ctx, "fallback clipboard failed, continuing without copy", "error", err)
		if d.metrics != nil {
			d.metrics.ClipboardFailures.Inc()
		}
	}
}
