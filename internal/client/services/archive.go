package services

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/common"
	"github.com/nmatveev/dockeep/internal/logging"
)

// ArchiveService wraps the archive/restore endpoints. It also satisfies
// nav.Fetcher so the navigation cursor fetches through it.
type ArchiveService interface {
	FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error)
	ArchiveDocument(ctx context.Context, req models.ArchiveRequest) error
	ArchiveFolder(ctx context.Context, req models.ArchiveRequest) error
	RestoreDocument(ctx context.Context, id string) error
	RestoreFolder(ctx context.Context, id string) error
}

type archiveService struct {
	client api.Client
	logger logging.Logger
}

func NewArchiveService(client api.Client, logger logging.Logger) ArchiveService {
	return &archiveService{client: client, logger: logger}
}

func (s *archiveService) FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error) {
	return s.client.FetchArchive(ctx, folderID)
}

func (s *archiveService) ArchiveDocument(ctx context.Context, req models.ArchiveRequest) error {
	if err := validateArchiveRequest(&req); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	s.logger.Info(ctx, "archiving document", "id", req.ID, "mode", req.Mode)
	return s.client.ArchiveDocument(ctx, req)
}

func (s *archiveService) ArchiveFolder(ctx context.Context, req models.ArchiveRequest) error {
	if err := validateArchiveRequest(&req); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	s.logger.Info(ctx, "archiving folder", "id", req.ID, "mode", req.Mode)
	return s.client.ArchiveFolder(ctx, req)
}

func (s *archiveService) RestoreDocument(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", common.ErrorValidation)
	}
	return s.client.RestoreDocument(ctx, id)
}

func (s *archiveService) RestoreFolder(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", common.ErrorValidation)
	}
	return s.client.RestoreFolder(ctx, id)
}

func validateArchiveRequest(req *models.ArchiveRequest) error {
	rules := []*validation.FieldRules{
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Mode, validation.Required,
			validation.In(models.ArchiveModePermanent, models.ArchiveModeUntil)),
		validation.Field(&req.Note, validation.Length(0, 512)),
	}

	if req.Mode == models.ArchiveModeUntil {
		rules = append(rules,
			validation.Field(&req.Until,
				validation.Required.Error("until date is required for time-boxed archiving")))
	}

	return validation.ValidateStruct(req, rules...)
}
