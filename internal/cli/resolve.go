package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
)

// resolveActivity accepts a full ID or a unique prefix of at least four
// characters, as printed by `activity list`.
func resolveActivity(ctx context.Context, svc service.ActivityService, ref string) (*domain.Activity, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("activity id is required")
	}

	a, err := svc.Get(ctx, ref)
	if err == nil {
		return a, nil
	}
	if !isNotFound(err) || len(ref) < 4 {
		return nil, err
	}

	all, err := svc.ListFeed(ctx, service.FeedQuery{IncludePrivate: true})
	if err != nil {
		return nil, err
	}
	var match *domain.Activity
	for _, cand := range all {
		if !strings.HasPrefix(cand.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("activity id %q is ambiguous", ref)
		}
		match = cand
	}
	if match == nil {
		return nil, fmt.Errorf("activity %s: %w", ref, repository.ErrNotFound)
	}
	return match, nil
}

// resolveComment finds one of an activity's comments by full ID or
// unique prefix, the same way resolveActivity does.
func resolveComment(ctx context.Context, svc service.ActivityService, activityID, ref string) (*domain.Comment, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("comment id is required")
	}

	comments, err := svc.ListComments(ctx, activityID, 0, 0)
	if err != nil {
		return nil, err
	}
	var match *domain.Comment
	for _, c := range comments {
		if c.ID == ref {
			return c, nil
		}
		if len(ref) < 4 || !strings.HasPrefix(c.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("comment id %q is ambiguous", ref)
		}
		match = c
	}
	if match == nil {
		return nil, fmt.Errorf("comment %s: %w", ref, repository.ErrNotFound)
	}
	return match, nil
}
