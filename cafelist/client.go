// Package cafelist is the cafe listing page client. It loads every cafe into
// the list container on start, replaces the list with search results when the
// search form is submitted and announces a random pick when the random-cafe
// control is clicked.
//
// The page, the alert channel and the backend are injected, so the same
// client runs against the live DOM in WASM and against dom.Memory natively.
package cafelist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/cafelist/api"
	"github.com/vcrobe/cafelist/cafe"
	"github.com/vcrobe/cafelist/config"
	"github.com/vcrobe/cafelist/dialogs"
	"github.com/vcrobe/cafelist/dom"
	"github.com/vcrobe/cafelist/events"
	"github.com/vcrobe/cafelist/vdom"
)

// CafeAPI is the backend as the client sees it. *api.Client satisfies it.
type CafeAPI interface {
	ListCafes(ctx context.Context) ([]cafe.Cafe, error)
	SearchByLocation(ctx context.Context, term string) ([]cafe.Cafe, error)
	RandomCafe(ctx context.Context) (cafe.Cafe, error)
}

var _ CafeAPI = (*api.Client)(nil)

// Client wires the page to the backend. Flows keep no state between calls;
// overlapping flows are not cancelled and the last one to finish owns the list.
type Client struct {
	doc      dom.Document
	notifier dialogs.Notifier
	api      CafeAPI
	cfg      config.Config
	labels   CardLabels
	logger   *zap.Logger

	// flows started from event listeners
	flows errgroup.Group
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConfig replaces the default element ids, route and messages.
func WithConfig(cfg config.Config) Option {
	return func(c *Client) {
		c.cfg = cfg
	}
}

// New creates a client. Nothing touches the page until Initialize.
func New(doc dom.Document, notifier dialogs.Notifier, cafes CafeAPI, opts ...Option) *Client {
	c := &Client{
		doc:      doc,
		notifier: notifier,
		api:      cafes,
		cfg:      config.Default(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.labels = LabelsFrom(c.cfg)
	return c
}

// Initialize starts loading the full list and binds the random-cafe control
// and the search form. Call it once, when the page is ready.
func (c *Client) Initialize(ctx context.Context) error {
	els := c.cfg.Elements

	c.dispatch(func() { c.LoadAllCafes(ctx) })

	err := c.doc.AddEventListener(els.RandomButton, "click", func(events.Event) {
		c.dispatch(func() { c.RequestRandomCafe(ctx) })
	})
	if err != nil {
		return fmt.Errorf("bind random cafe control: %w", err)
	}

	err = c.doc.AddEventListener(els.SearchForm, "submit", func(ev events.Event) {
		// must happen before the browser callback returns; the event is
		// stale once it does, so the flow gets none
		ev.PreventDefault()
		c.dispatch(func() { c.SubmitSearch(ctx, nil) })
	})
	if err != nil {
		return fmt.Errorf("bind search form: %w", err)
	}

	c.logger.Debug("cafe list initialized",
		zap.String("list", els.List),
		zap.String("random_button", els.RandomButton),
		zap.String("search_form", els.SearchForm))
	return nil
}

// Wait blocks until every flow started by Initialize or an event listener
// has finished.
func (c *Client) Wait() {
	_ = c.flows.Wait()
}

// dispatch runs fn off the event callback. Browser callbacks must not block
// on the network.
func (c *Client) dispatch(fn func()) {
	c.flows.Go(func() error {
		fn()
		return nil
	})
}

// LoadAllCafes replaces the list with a card for every cafe, or with an
// error message when the request fails.
func (c *Client) LoadAllCafes(ctx context.Context) {
	cafes, err := c.api.ListCafes(ctx)
	if err != nil {
		c.logger.Warn("failed to load cafes", zap.Error(err))
		c.show(message(c.reason(err, c.cfg.Messages.ListFailed), "red"))
		return
	}

	c.logger.Debug("cafes loaded", zap.Int("count", len(cafes)))
	c.show(RenderCafeCards(cafes, c.labels)...)
}

// SubmitSearch handles the search form. A blank term raises a warning and
// sends nothing. Otherwise the list is replaced by the results only.
//
// A non-nil ev has its default prevented first. Callers holding a browser
// event must prevent it themselves, before their callback returns, and pass
// nil.
func (c *Client) SubmitSearch(ctx context.Context, ev events.Event) {
	if ev != nil {
		ev.PreventDefault()
	}

	raw, err := c.doc.Value(c.cfg.Elements.SearchInput)
	if err != nil {
		c.logger.Error("failed to read search input", zap.Error(err))
		return
	}

	term, ok := NormalizeSearchTerm(raw)
	if !ok {
		c.notifier.Alert(c.cfg.Messages.EmptySearch)
		return
	}

	cafes, err := c.api.SearchByLocation(ctx, term)
	switch {
	case errors.Is(err, api.ErrNotFound):
		c.logger.Debug("no cafes for location", zap.String("term", term))
		c.show(message(c.cfg.Messages.NoResults, "gray"))
	case err != nil:
		c.logger.Warn("search failed", zap.String("term", term), zap.Error(err))
		c.show(message(c.cfg.Messages.SearchFailedPrefix+c.reason(err, c.cfg.Messages.SearchFailed), "red"))
	case len(cafes) == 0:
		c.show(message(c.cfg.Messages.NoResults, "gray"))
	default:
		c.logger.Debug("search results", zap.String("term", term), zap.Int("count", len(cafes)))
		c.show(RenderCafeCards(cafes, c.labels)...)
	}
}

// RequestRandomCafe alerts the name and location of a random cafe, or the
// failure reason. It never touches the list.
func (c *Client) RequestRandomCafe(ctx context.Context) {
	picked, err := c.api.RandomCafe(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch random cafe", zap.Error(err))
		c.notifier.Alert(c.cfg.Messages.RandomFailedPrefix + c.reason(err, c.cfg.Messages.RandomFailed))
		return
	}

	c.notifier.Alert(c.cfg.Messages.RandomPickPrefix + picked.Name + " - " + picked.Location)
}

// NormalizeSearchTerm trims and lower-cases raw input. ok is false when
// nothing is left to search for.
func NormalizeSearchTerm(raw string) (term string, ok bool) {
	term = strings.TrimSpace(raw)
	if term == "" {
		return "", false
	}
	return strings.ToLower(term), true
}

// reason is the text shown for a failed request: the configured message for
// a non-2xx status, the error itself for anything else.
func (c *Client) reason(err error, serverFailure string) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		return serverFailure
	}
	return err.Error()
}

func (c *Client) show(nodes ...*vdom.VNode) {
	if err := c.doc.SetContent(c.cfg.Elements.List, nodes...); err != nil {
		c.logger.Error("failed to update cafe list", zap.Error(err))
	}
}
