package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nmatveev/dockeep/internal/client/models"
)

// The backend's payloads are loosely shaped: identifiers arrive as strings
// or numbers, the path field goes by several names, and create responses
// may or may not be wrapped in a "document" envelope. Everything is
// normalized here, once, into canonical models.

type rawDocument struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	DocPath     string          `json:"doc_path"`
	File        string          `json:"file"`
	URL         string          `json:"url"`
	Size        *int64          `json:"size"`
	FileSize    *int64          `json:"file_size"`
	Department  string          `json:"department"`
	Nature      string          `json:"nature"`
	Site        string          `json:"site"`
	Perimeter   string          `json:"perimeter"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	ModifiedAt  string          `json:"modified_at"`
}

func (r rawDocument) canonical() models.Document {
	doc := models.Document{
		ID:          decodeID(r.ID),
		Title:       firstNonEmpty(r.Title, r.Name),
		Path:        firstNonEmpty(r.Path, r.DocPath, r.File, r.URL),
		Department:  r.Department,
		Nature:      r.Nature,
		Site:        r.Site,
		Perimeter:   r.Perimeter,
		Description: r.Description,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(firstNonEmpty(r.UpdatedAt, r.ModifiedAt)),
	}
	if r.Size != nil {
		doc.Size = *r.Size
	} else if r.FileSize != nil {
		doc.Size = *r.FileSize
	}
	return doc
}

type rawArchiveFolder struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	FolName       string          `json:"fol_name"`
	ArchivedAt    string          `json:"archived_at"`
	ArchivedUntil string          `json:"archived_until"`
	ArchivedBy    string          `json:"archived_by"`
	ArchivedNote  string          `json:"archived_note"`
	ArchiveNote   string          `json:"archive_note"`
}

func (r rawArchiveFolder) canonical() models.ArchiveFolder {
	return models.ArchiveFolder{
		ID:            decodeID(r.ID),
		Name:          firstNonEmpty(r.FolName, r.Name),
		ArchivedAt:    parseTime(r.ArchivedAt),
		ArchivedUntil: parseTime(r.ArchivedUntil),
		ArchivedBy:    r.ArchivedBy,
		Note:          firstNonEmpty(r.ArchivedNote, r.ArchiveNote),
	}
}

type rawArchiveDocument struct {
	ID            json.RawMessage `json:"id"`
	Title         string          `json:"title"`
	Name          string          `json:"name"`
	Size          *int64          `json:"size"`
	ArchivedAt    string          `json:"archived_at"`
	ArchivedUntil string          `json:"archived_until"`
	ArchivedBy    string          `json:"archived_by"`
	ArchivedNote  string          `json:"archived_note"`
	ArchiveNote   string          `json:"archive_note"`
}

func (r rawArchiveDocument) canonical() models.ArchiveDocument {
	doc := models.ArchiveDocument{
		ID:            decodeID(r.ID),
		Title:         firstNonEmpty(r.Title, r.Name),
		ArchivedAt:    parseTime(r.ArchivedAt),
		ArchivedUntil: parseTime(r.ArchivedUntil),
		ArchivedBy:    r.ArchivedBy,
		Note:          firstNonEmpty(r.ArchivedNote, r.ArchiveNote),
	}
	if r.Size != nil {
		doc.Size = *r.Size
	}
	return doc
}

// decodeDocument accepts both the flat shape and the {"document": {...}}
// envelope returned by the create endpoint.
func decodeDocument(data []byte) (*models.Document, error) {
	var envelope struct {
		Document *rawDocument `json:"document"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Document != nil {
		doc := envelope.Document.canonical()
		return &doc, nil
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc := raw.canonical()
	return &doc, nil
}

func decodeDocumentList(data []byte) ([]models.Document, error) {
	var raws []rawDocument
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode document list: %w", err)
	}
	docs := make([]models.Document, 0, len(raws))
	for _, r := range raws {
		docs = append(docs, r.canonical())
	}
	return docs, nil
}

func decodeArchiveListing(data []byte) (*models.ArchiveListing, error) {
	var raw struct {
		Folders   []rawArchiveFolder   `json:"folders"`
		Documents []rawArchiveDocument `json:"documents"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode archive listing: %w", err)
	}

	listing := &models.ArchiveListing{
		Folders:   make([]models.ArchiveFolder, 0, len(raw.Folders)),
		Documents: make([]models.ArchiveDocument, 0, len(raw.Documents)),
	}
	for _, f := range raw.Folders {
		listing.Folders = append(listing.Folders, f.canonical())
	}
	for _, d := range raw.Documents {
		listing.Documents = append(listing.Documents, d.canonical())
	}
	return listing, nil
}

// decodeID accepts a string or numeric JSON identifier.
func decodeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime parses the backend's timestamp variants; nil when absent or
// unparseable. Timestamps are display-only, so a bad value is dropped
// rather than failing the whole decode.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
