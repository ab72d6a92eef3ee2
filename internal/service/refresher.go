package service

import (
	"context"
	"sync"
	"time"

	"papertrade/internal/logger"
)

// Poll intervals for each refreshed subject.
const (
	TickerInterval    = 15 * time.Second
	WatchlistInterval = 10 * time.Second
	QuoteInterval     = 10 * time.Second
	PortfolioInterval = 15 * time.Second
	NewsInterval      = 5 * time.Minute
	CryptoInterval    = 30 * time.Second
)

// Subscription is one active polling loop. Stop cancels it
// deterministically; it is safe to call more than once.
type Subscription struct {
	subject string
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

func (s *Subscription) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Refresher runs repeated fetches on fixed intervals and publishes each
// completed result. Subscribing a subject that already has a live
// subscription stops the old one first, so a subject can never leak a
// duplicate timer. Fetches may overlap their interval; publication is
// ordered by completion, so the most recently completed response always
// wins even when an older request finishes late.
type Refresher struct {
	mu            sync.Mutex
	subscriptions map[string]*Subscription
}

func NewRefresher() *Refresher {
	return &Refresher{
		subscriptions: map[string]*Subscription{},
	}
}

// Subscribe starts polling fetch every interval, invoking publish with
// each result. The first fetch fires immediately. Fetch errors are
// logged and the loop keeps ticking; there is no backoff.
func (r *Refresher) Subscribe(
	ctx context.Context,
	subject string,
	interval time.Duration,
	fetch func(ctx context.Context) (any, error),
	publish func(subject string, value any),
) *Subscription {
	r.mu.Lock()
	if prior, ok := r.subscriptions[subject]; ok {
		r.mu.Unlock()
		prior.Stop()
		r.mu.Lock()
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		subject: subject,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	r.subscriptions[subject] = sub
	r.mu.Unlock()

	go r.run(subCtx, sub, interval, fetch, publish)
	return sub
}

func (r *Refresher) run(
	ctx context.Context,
	sub *Subscription,
	interval time.Duration,
	fetch func(ctx context.Context) (any, error),
	publish func(subject string, value any),
) {
	defer close(sub.done)
	defer func() {
		r.mu.Lock()
		if r.subscriptions[sub.subject] == sub {
			delete(r.subscriptions, sub.subject)
		}
		r.mu.Unlock()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var inFlight sync.WaitGroup
	defer inFlight.Wait()

	// publishMu serializes publishes in completion order, so when a slow
	// fetch outlives the next tick the later-completed response lands
	// last and wins.
	var publishMu sync.Mutex

	doFetch := func() {
		inFlight.Add(1)
		go func() {
			defer inFlight.Done()
			value, err := fetch(ctx)
			if err != nil {
				logger.FromContext(ctx).Warnf("refresh fetch failed for %s: %v", sub.subject, err)
				return
			}

			publishMu.Lock()
			defer publishMu.Unlock()
			select {
			case <-ctx.Done():
				// subject changed or view torn down; drop the result
				return
			default:
			}
			publish(sub.subject, value)
		}()
	}

	doFetch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			doFetch()
		}
	}
}

// Stop cancels the subscription for subject, if any.
func (r *Refresher) Stop(subject string) {
	r.mu.Lock()
	sub, ok := r.subscriptions[subject]
	r.mu.Unlock()
	if ok {
		sub.Stop()
	}
}

// StopAll tears down every live subscription.
func (r *Refresher) StopAll() {
	r.mu.Lock()
	subs := make([]*Subscription, 0, len(r.subscriptions))
	for _, sub := range r.subscriptions {
		subs = append(subs, sub)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Stop()
	}
}
