package service

import (
	"context"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/google/uuid"
)

func (s *activityService) ToggleLike(ctx context.Context, activityID string) (a *domain.Activity, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{"activity_id": activityID}
	defer func() {
		s.observe(ctx, "toggle-like", startedAt, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		txLikes := repository.NewSQLiteLikeRepo(tx)

		if _, err := txActivities.GetByID(ctx, activityID); err != nil {
			return err
		}
		liked, err := txLikes.Has(ctx, activityID)
		if err != nil {
			return err
		}
		if liked {
			err = txLikes.Remove(ctx, activityID)
		} else {
			err = txLikes.Add(ctx, activityID, s.clock.Now().UTC())
		}
		if err != nil {
			return err
		}

		a, err = txActivities.GetByID(ctx, activityID)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["liked"] = a.Liked()
	return a, nil
}

func (s *activityService) Comment(ctx context.Context, activityID, body string) (c *domain.Comment, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{"activity_id": activityID}
	defer func() {
		s.observe(ctx, "post-comment", startedAt, err, fields)
	}()

	body, err = domain.NormalizeCommentBody(body)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteActivityRepo(tx).GetByID(ctx, activityID); err != nil {
			return err
		}
		now := s.clock.Now().UTC()
		c = &domain.Comment{
			ID:         uuid.New().String(),
			ActivityID: activityID,
			Body:       body,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return repository.NewSQLiteCommentRepo(tx).Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	fields["comment_id"] = c.ID
	return c, nil
}

func (s *activityService) EditComment(ctx context.Context, commentID, body string) (c *domain.Comment, err error) {
	startedAt := s.clock.Now()
	defer func() {
		s.observe(ctx, "edit-comment", startedAt, err, map[string]any{"comment_id": commentID})
	}()

	body, err = domain.NormalizeCommentBody(body)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txComments := repository.NewSQLiteCommentRepo(tx)
		if err := txComments.UpdateBody(ctx, commentID, body, s.clock.Now().UTC()); err != nil {
			return err
		}
		var err error
		c, err = txComments.GetByID(ctx, commentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *activityService) DeleteComment(ctx context.Context, commentID string) (err error) {
	startedAt := s.clock.Now()
	defer func() {
		s.observe(ctx, "delete-comment", startedAt, err, map[string]any{"comment_id": commentID})
	}()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCommentRepo(tx).Delete(ctx, commentID)
	})
}

// ListComments reads the activity and its comments in one transaction so
// a missing activity reports ErrNotFound instead of an empty list.
func (s *activityService) ListComments(ctx context.Context, activityID string, limit, offset int) ([]*domain.Comment, error) {
	var out []*domain.Comment
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteActivityRepo(tx).GetByID(ctx, activityID); err != nil {
			return err
		}
		var err error
		out, err = repository.NewSQLiteCommentRepo(tx).ListByActivity(ctx, activityID, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
