package tour

import (
	"context"
	"sync"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/model"
)

// RouteSource lists the ordered tour route for one place.
type RouteSource interface {
	ListRoute(ctx context.Context, placeID string) ([]*model.Spot, error)
}

type EngineConfig struct {
	Language          string
	PlaceID           string
	WakeListenSeconds float64
}

// Engine is the idle-state wake loop: it listens in short windows for the
// wake phrase and hands control to the Controller for one full tour, then
// goes back to listening. Exactly one tour runs at a time.
type Engine struct {
	routes     RouteSource
	listener   Listener
	wake       WakeMatcher
	controller *Controller
	cfg        EngineConfig

	mu      sync.Mutex
	session *Session
}

func NewEngine(routes RouteSource, listener Listener, wake WakeMatcher, controller *Controller, cfg EngineConfig) *Engine {
	if cfg.Language == "" {
		cfg.Language = "ko"
	}
	if cfg.WakeListenSeconds <= 0 {
		cfg.WakeListenSeconds = 2
	}
	return &Engine{
		routes:     routes,
		listener:   listener,
		wake:       wake,
		controller: controller,
		cfg:        cfg,
	}
}

// Session returns the most recent tour session, or nil before the first
// wake. Used by the status endpoint.
func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Run blocks listening for the wake phrase and runs tours until the context
// is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx).With(
		zap.String("place_id", e.cfg.PlaceID), zap.String("lang", e.cfg.Language))
	logger.Info("wake loop started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := e.listener.Listen(ctx, e.cfg.Language, e.cfg.WakeListenSeconds)
		if text == "" {
			continue
		}
		if !e.wake.Match(text, e.cfg.Language) {
			logger.Debug("heard speech but no wake phrase", zap.String("text", text))
			continue
		}
		logger.Info("wake phrase detected, starting tour")
		if err := e.runOneTour(ctx); err != nil {
			logger.Error("tour aborted", zap.Error(err))
			// Back off so a broken route lookup does not spin the loop.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}
}

// RunOnce starts a tour immediately without waiting for the wake phrase.
func (e *Engine) RunOnce(ctx context.Context) error {
	return e.runOneTour(ctx)
}

func (e *Engine) runOneTour(ctx context.Context) error {
	route, err := e.routes.ListRoute(ctx, e.cfg.PlaceID)
	if err != nil {
		return err
	}
	session := NewSession(e.cfg.Language, route)
	e.mu.Lock()
	e.session = session
	e.mu.Unlock()
	e.controller.RunTour(ctx, session)
	return nil
}
