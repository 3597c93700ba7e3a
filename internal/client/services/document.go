package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/client/pathtree"
	"github.com/nmatveev/dockeep/internal/logging"
)

// DocumentService exposes the live (non-archived) document collection as a
// browsable folder tree. The backend stores flat paths only; rows are
// materialized client-side on every call.
type DocumentService interface {
	// Browse fetches the document collection and materializes the rows
	// for the given folder path.
	Browse(ctx context.Context, currentPath string) ([]pathtree.Row, error)

	// Find returns documents whose display name or path contains the
	// query, case-insensitively.
	Find(ctx context.Context, query string) ([]models.Document, error)

	// Patch applies a partial metadata update to one document.
	Patch(ctx context.Context, id string, fields map[string]any) error
}

type documentService struct {
	client api.Client
	logger logging.Logger
}

func NewDocumentService(client api.Client, logger logging.Logger) DocumentService {
	return &documentService{client: client, logger: logger}
}

func (s *documentService) Browse(ctx context.Context, currentPath string) ([]pathtree.Row, error) {
	docs, err := s.client.ListDocuments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return pathtree.Materialize(docs, currentPath), nil
}

func (s *documentService) Find(ctx context.Context, query string) ([]models.Document, error) {
	docs, err := s.client.ListDocuments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	q := strings.ToLower(query)
	var matches []models.Document
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.DisplayName()), q) ||
			strings.Contains(strings.ToLower(d.Path), q) {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

func (s *documentService) Patch(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return fmt.Errorf("patch document: empty id")
	}
	return s.client.PatchDocument(ctx, id, fields, false)
}
