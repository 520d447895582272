// Package session drives complete assessment runs on top of the measurement
// core: it owns session state, feeds each response into the estimator and
// asks the stop rule and selector what happens next.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"traitcat/internal/cat"
	"traitcat/internal/domain"
	"traitcat/internal/irt"
	"traitcat/internal/itembank"
)

var (
	ErrSessionComplete = errors.New("session already complete")
	ErrItemNotFound    = errors.New("item not in bank")
	ErrItemRepeated    = errors.New("item already administered")
)

// Service orchestrates adaptive assessments. It holds no per-session state of
// its own; everything lives in the Store so sessions survive service
// restarts wherever the store does.
type Service struct {
	store    Store
	bank     *itembank.Bank
	strategy cat.Strategy
	rule     cat.StopRule
	grid     irt.Grid
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store Store, bank *itembank.Bank, strategy cat.Strategy, rule cat.StopRule, grid irt.Grid, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		bank:     bank,
		strategy: strategy,
		rule:     rule,
		grid:     grid,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start opens a new session with neutral priors on every dimension.
func (s *Service) Start(ctx context.Context, userID string) (*domain.Session, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     domain.SessionActive,
		Estimates: make(map[domain.Dimension]domain.TraitEstimate, len(domain.Dimensions)),
		StartedAt: s.now(),
	}
	for _, dim := range domain.Dimensions {
		sess.Estimates[dim] = domain.NewTraitEstimate()
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("assessment session started",
		zap.String("session_id", sess.ID),
		zap.String("user_id", userID))
	return sess, nil
}

// NextItem evaluates the stop rule and, if the session continues, asks the
// strategy for the next item. A nil item with a nil error means the
// assessment has finished; the session carries the stop reason.
func (s *Service) NextItem(ctx context.Context, sessionID string) (*domain.Item, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == domain.SessionComplete {
		return nil, ErrSessionComplete
	}

	remaining := s.bank.Len() - len(sess.Administered)
	if dec := s.rule.Evaluate(len(sess.Administered), sess.Estimates, remaining); dec.Stop {
		return nil, s.complete(ctx, sess, dec.Reason)
	}

	item, ok := s.strategy.SelectNext(sess.Estimates, s.bank.Items(), sess.AdministeredSet())
	if !ok {
		// Empty pool is a terminal signal equivalent to a stop-rule firing.
		return nil, s.complete(ctx, sess, domain.StopPoolExhausted)
	}
	return &item, nil
}

// Submit records a response, re-estimates the item's dimension from its full
// response history and re-evaluates the stop rule.
func (s *Service) Submit(ctx context.Context, sessionID, itemID string, category int) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == domain.SessionComplete {
		return nil, ErrSessionComplete
	}
	item, ok := s.bank.Get(itemID)
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrItemNotFound)
	}
	if category < 1 || category > item.Categories() {
		return nil, fmt.Errorf("item %s category %d: %w", itemID, category, domain.ErrInvalidCategory)
	}
	if sess.HasAdministered(itemID) {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrItemRepeated)
	}

	sess.Administered = append(sess.Administered, itemID)
	sess.Responses = append(sess.Responses, domain.Response{
		ItemID:    itemID,
		Dimension: item.Dimension,
		Category:  category,
		At:        s.now(),
	})

	theta, se := irt.Estimate(s.dimensionResponses(sess, item.Dimension), s.grid)
	sess.Estimates[item.Dimension] = domain.TraitEstimate{Theta: theta, SE: se}

	s.logger.Info("response recorded",
		zap.String("session_id", sess.ID),
		zap.String("item_id", itemID),
		zap.String("dimension", string(item.Dimension)),
		zap.Int("category", category),
		zap.Float64("theta", theta),
		zap.Float64("se", se))

	remaining := s.bank.Len() - len(sess.Administered)
	if dec := s.rule.Evaluate(len(sess.Administered), sess.Estimates, remaining); dec.Stop {
		if err := s.complete(ctx, sess, dec.Reason); err != nil {
			return nil, err
		}
		return sess, nil
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Results returns a copy of the per-dimension estimates. They are frozen once
// the session is complete but readable at any point.
func (s *Service) Results(ctx context.Context, sessionID string) (map[domain.Dimension]domain.TraitEstimate, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Dimension]domain.TraitEstimate, len(sess.Estimates))
	for dim, est := range sess.Estimates {
		out[dim] = est
	}
	return out, nil
}

// Get returns the session aggregate.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *Service) dimensionResponses(sess *domain.Session, dim domain.Dimension) []irt.Scored {
	var scored []irt.Scored
	for _, r := range sess.Responses {
		if r.Dimension != dim {
			continue
		}
		item, ok := s.bank.Get(r.ItemID)
		if !ok {
			continue
		}
		scored = append(scored, irt.Scored{Item: item, Category: r.Category})
	}
	return scored
}

func (s *Service) complete(ctx context.Context, sess *domain.Session, reason domain.StopReason) error {
	sess.Complete(reason, s.now())
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("assessment session complete",
		zap.String("session_id", sess.ID),
		zap.String("reason", string(reason)),
		zap.Int("items_administered", len(sess.Administered)))
	return nil
}
