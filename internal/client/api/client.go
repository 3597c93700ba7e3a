// Package api implements the REST transport for the document-management
// backend and the external mLean perimeter classification service. All
// loosely-shaped server payloads are normalized into canonical models at
// this boundary; nothing above it deals with field aliases.
package api

import (
	"context"
	"io"

	"github.com/nmatveev/dockeep/internal/client/models"
)

// CreateDocumentRequest carries one multipart document upload. Fields with
// empty values are omitted from the submission entirely rather than sent
// as empty strings.
type CreateDocumentRequest struct {
	FileName string
	Content  io.Reader
	Fields   map[string]string
}

// PerimeterSyncRequest is the best-effort secondary sync to the external
// classification service.
type PerimeterSyncRequest struct {
	Title       string
	Perimeter   string
	Description string
	FileName    string
	Content     io.Reader
}

// PerimeterSyncResult holds identifiers minted by the classification
// service, attached to the local document afterwards via a silent patch.
type PerimeterSyncResult struct {
	MleanID string `json:"mlean_id"`
	Ref     string `json:"ref"`
}

// Client is the operation surface the services are written against.
// The concrete implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	Validate(ctx context.Context) error
	SetToken(token string)

	// Documents.
	ListDocuments(ctx context.Context, folderID *string) ([]models.Document, error)
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*models.Document, error)
	PatchDocument(ctx context.Context, id string, fields map[string]any, silent bool) error

	// Archive.
	FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error)
	ArchiveDocument(ctx context.Context, req models.ArchiveRequest) error
	ArchiveFolder(ctx context.Context, req models.ArchiveRequest) error
	RestoreDocument(ctx context.Context, id string) error
	RestoreFolder(ctx context.Context, id string) error

	// External classification service.
	SyncPerimeter(ctx context.Context, req PerimeterSyncRequest) (*PerimeterSyncResult, error)
}
