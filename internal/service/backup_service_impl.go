package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/importer"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/benbjohnson/clock"
)

type backupService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	clock      clock.Clock
	observer   UseCaseObserver
}

func NewBackupService(
	activities repository.ActivityRepo,
	uow db.UnitOfWork,
	clk clock.Clock,
	observers ...UseCaseObserver,
) BackupService {
	if clk == nil {
		clk = clock.New()
	}
	return &backupService{
		activities: activities,
		uow:        uow,
		clock:      clk,
		observer:   combineObservers(observers),
	}
}

func (s *backupService) Export(ctx context.Context) (*importer.ImportSchema, error) {
	all, err := s.activities.List(ctx, repository.ActivityFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return importer.FromActivities(all, s.clock.Now()), nil
}

func (s *backupService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

// ImportFromSchema writes every activity in one transaction. Activities
// whose id is already stored are skipped, so importing the same backup
// twice is harmless.
func (s *backupService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	startedAt := s.clock.Now()
	fields := map[string]any{"activities": len(schema.Activities)}
	defer func() {
		if res != nil {
			fields["imported"] = res.Imported
			fields["skipped"] = res.Skipped
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-activities",
			StartedAt: startedAt,
			Duration:  s.clock.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	acts, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		for _, a := range acts {
			if _, err := txActivities.GetByID(ctx, a.ID); err == nil {
				result.Skipped++
				continue
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := txActivities.Create(ctx, a); err != nil {
				return fmt.Errorf("creating activity %s: %w", a.ID, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
