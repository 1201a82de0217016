package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// ViewDebounce is the window within which repeat views of the same
// block are collapsed into one event.
const ViewDebounce = 5 * time.Second

// Tracker is the client-side emitter of analytics events. Views are
// debounced per slug; copies always fire. Delivery happens on a
// background goroutine and failures are logged, never returned, so the
// UI path that triggered the event is unaffected.
type Tracker struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	lastView map[string]time.Time

	wg sync.WaitGroup
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithHTTPClient overrides the HTTP client used for delivery.
func WithHTTPClient(c *http.Client) TrackerOption {
	return func(t *Tracker) { t.client = c }
}

// WithClock overrides the tracker's clock. Test hook.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a Tracker posting to baseURL.
func NewTracker(baseURL string, logger *slog.Logger, opts ...TrackerOption) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
		now:      time.Now,
		lastView: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TrackView records a view of a block. Repeat views of the same slug
// within ViewDebounce are dropped. The debounce decision is made
// synchronously so concurrent callers cannot both pass the check.
func (t *Tracker) TrackView(slug string) {
	now := t.now()

	t.mu.Lock()
	if last, ok := t.lastView[slug]; ok && now.Sub(last) < ViewDebounce {
		t.mu.Unlock()
		return
	}
	t.lastView[slug] = now
	t.mu.Unlock()

	t.send(slug, ActionView, nil)
}

// TrackCopyCode records a copy of a block's source code. Copies are
// never debounced.
func (t *Tracker) TrackCopyCode(slug string, metadata map[string]any) {
	t.send(slug, ActionCopyCode, metadata)
}

// TrackCopyCLI records a copy of a block's CLI install command.
func (t *Tracker) TrackCopyCLI(slug string, metadata map[string]any) {
	t.send(slug, ActionCopyCLI, metadata)
}

// Flush blocks until all in-flight deliveries finish. Test hook.
func (t *Tracker) Flush() {
	t.wg.Wait()
}

func (t *Tracker) send(slug string, action Action, metadata map[string]any) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		payload, err := json.Marshal(map[string]any{
			"action":   action,
			"metadata": metadata,
		})
		if err != nil {
			t.logger.Debug("analytics payload marshal failed", "slug", slug, "error", err)
			return
		}

		url := fmt.Sprintf("%s/api/blocks/%s/analytics", t.baseURL, slug)
		resp, err := t.client.Post(url, "application/json", bytes.NewReader(payload))
		if err != nil {
			t.logger.Debug("analytics delivery failed", "slug", slug, "action", action, "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			t.logger.Debug("analytics delivery rejected", "slug", slug, "action", action, "status", resp.StatusCode)
		}
	}()
}
