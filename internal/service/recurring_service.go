package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
)

// RecurringReader is the read surface RecurringService needs.
type RecurringReader interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*recurring.RecurringTransaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*recurring.RecurringTransaction, error)
	ListDue(ctx context.Context, now time.Time) ([]*recurring.RecurringTransaction, error)
}

// RecurringService handles recurring-transaction definitions and their
// scheduled materialization.
type RecurringService struct {
	operator  Processor
	recurring RecurringReader
	clock     Clock
	log       *logrus.Logger
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(op Processor, recurringReader RecurringReader, clock Clock, log *logrus.Logger) *RecurringService {
	return &RecurringService{
		operator:  op,
		recurring: recurringReader,
		clock:     clock,
		log:       log,
	}
}

// Create creates a recurring definition. The first due date is one period
// after the start date.
func (s *RecurringService) Create(ctx context.Context, userID uuid.UUID, input actions.RecurringInput) (*recurring.RecurringTransaction, error) {
	action := &actions.CreateRecurring{Input: input, UserID: userID}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// FindAll lists the user's recurring definitions, newest first.
func (s *RecurringService) FindAll(ctx context.Context, userID uuid.UUID) ([]*recurring.RecurringTransaction, error) {
	return s.recurring.ListByUser(ctx, userID)
}

// FindOne returns one owned recurring definition.
func (s *RecurringService) FindOne(ctx context.Context, id, userID uuid.UUID) (*recurring.RecurringTransaction, error) {
	def, err := s.recurring.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, apperr.NotFound("recurring transaction not found")
	}
	return def, nil
}

// Update applies a patch to a recurring definition.
func (s *RecurringService) Update(ctx context.Context, id, userID uuid.UUID, patch actions.RecurringPatch) (*recurring.RecurringTransaction, error) {
	action := &actions.UpdateRecurring{ID: id, UserID: userID, Patch: patch}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Remove soft-deletes a recurring definition.
func (s *RecurringService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RemoveRecurring{ID: id, UserID: userID})
}

// ProcessDue materializes every active definition whose due date has
// passed, advancing each by one period. Definitions are processed
// independently; a failure on one is logged and does not stop the rest.
func (s *RecurringService) ProcessDue(ctx context.Context) {
	now := s.clock.Now()
	due, err := s.recurring.ListDue(ctx, now)
	if err != nil {
		s.log.WithError(err).Error("RecurringService.ProcessDue.ListError")
		return
	}

	processed := 0
	for _, def := range due {
		action := &actions.MaterializeRecurring{ID: def.ID, UserID: def.UserID, Now: now}
		if err := s.operator.Process(ctx, action); err != nil {
			s.log.WithError(err).WithField("recurring_transaction_id", def.ID).
				Error("RecurringService.ProcessDue.ItemError")
			continue
		}
		if action.Created != nil {
			processed++
		}
	}

	if len(due) > 0 {
		s.log.WithFields(logrus.Fields{
			"due":       len(due),
			"processed": processed,
		}).Info("RecurringService.ProcessDue.Complete")
	}
}
