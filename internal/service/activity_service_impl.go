package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	clock      clock.Clock
	observer   UseCaseObserver
}

// NewActivityService wires the activity use cases. A nil clk uses the
// wall clock.
func NewActivityService(
	activities repository.ActivityRepo,
	uow db.UnitOfWork,
	clk clock.Clock,
	observers ...UseCaseObserver,
) ActivityService {
	if clk == nil {
		clk = clock.New()
	}
	return &activityService{
		activities: activities,
		uow:        uow,
		clock:      clk,
		observer:   combineObservers(observers),
	}
}

func (s *activityService) SaveSession(ctx context.Context, res timer.Result, in SaveInput) (a *domain.Activity, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{
		"duration_seconds": res.Duration,
		"category":         res.Category,
	}
	defer func() {
		s.observe(ctx, "save-session", startedAt, err, fields)
	}()

	a, err = s.record(ctx, res.Minutes(), domain.CoalesceStr(in.Category, res.Category), in)
	if a != nil {
		fields["activity_id"] = a.ID
		fields["minutes"] = a.DurationMinutes
	}
	return a, err
}

func (s *activityService) LogManual(ctx context.Context, minutes int, in SaveInput) (a *domain.Activity, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{"minutes": minutes, "category": in.Category}
	defer func() {
		s.observe(ctx, "log-manual", startedAt, err, fields)
	}()

	a, err = s.record(ctx, minutes, in.Category, in)
	if a != nil {
		fields["activity_id"] = a.ID
	}
	return a, err
}

func (s *activityService) record(ctx context.Context, minutes int, category string, in SaveInput) (*domain.Activity, error) {
	a := &domain.Activity{
		ID:              uuid.New().String(),
		Category:        category,
		DurationMinutes: minutes,
		Note:            in.Note,
		EvidenceURL:     in.EvidenceURL,
		FocusLevel:      domain.FocusOrDefault(in.FocusLevel),
		Visibility:      domain.VisibilityOrDefault(in.Visibility),
		CreatedAt:       s.clock.Now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("saving activity: %w", err)
	}
	return a, nil
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) ListFeed(ctx context.Context, q FeedQuery) ([]*domain.Activity, error) {
	f := repository.ActivityFilter{
		Category: q.Category,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	if !q.IncludePrivate {
		f.Visibility = domain.VisibilityPublic
	}
	return s.activities.List(ctx, f)
}

func (s *activityService) Update(ctx context.Context, id string, u domain.ActivityUpdate) (updated *domain.Activity, err error) {
	startedAt := s.clock.Now()
	defer func() {
		s.observe(ctx, "edit-activity", startedAt, err, map[string]any{"activity_id": id})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)

		a, err := txActivities.GetByID(ctx, id)
		if err != nil {
			return err
		}
		u.Apply(a)
		if err := a.Validate(); err != nil {
			return err
		}
		if err := txActivities.Update(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *activityService) Delete(ctx context.Context, id string) (err error) {
	startedAt := s.clock.Now()
	defer func() {
		s.observe(ctx, "delete-activity", startedAt, err, map[string]any{"activity_id": id})
	}()
	return s.activities.Delete(ctx, id)
}

// Share bumps the share counter and returns the activity as stored after
// the increment.
func (s *activityService) Share(ctx context.Context, id string) (shared *domain.Activity, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{"activity_id": id}
	defer func() {
		s.observe(ctx, "share-activity", startedAt, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		if err := txActivities.IncrementShareCount(ctx, id); err != nil {
			return err
		}
		a, err := txActivities.GetByID(ctx, id)
		if err != nil {
			return err
		}
		shared = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["share_count"] = shared.ShareCount
	return shared, nil
}

func (s *activityService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  s.clock.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
