package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
)

type statsService struct {
	activities repository.ActivityRepo
}

func NewStatsService(activities repository.ActivityRepo) StatsService {
	return &statsService{activities: activities}
}

// ProfileStats counts every saved activity, private ones included.
func (s *statsService) ProfileStats(ctx context.Context, now time.Time) (domain.ProfileStats, error) {
	all, err := s.activities.List(ctx, repository.ActivityFilter{})
	if err != nil {
		return domain.ProfileStats{}, fmt.Errorf("loading activities: %w", err)
	}
	return domain.ComputeStats(all, now), nil
}
