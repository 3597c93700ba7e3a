package models

import "time"

// ArchiveMode selects between permanent archiving and time-boxed retention.
type ArchiveMode string

const (
	ArchiveModePermanent ArchiveMode = "permanent"
	ArchiveModeUntil     ArchiveMode = "until"
)

// ArchiveFolder is a folder inside the server-driven archive tree.
type ArchiveFolder struct {
	ID            string
	Name          string
	ArchivedAt    *time.Time
	ArchivedUntil *time.Time
	ArchivedBy    string
	Note          string
}

// ArchiveDocument is an archived document row.
type ArchiveDocument struct {
	ID            string
	Title         string
	Size          int64
	ArchivedAt    *time.Time
	ArchivedUntil *time.Time
	ArchivedBy    string
	Note          string
}

// ArchiveListing is the contents of one archived folder (or the archive
// root when the folder id is nil).
type ArchiveListing struct {
	Folders   []ArchiveFolder
	Documents []ArchiveDocument
}

// ArchiveRequest is the payload for archiving a document or folder.
type ArchiveRequest struct {
	ID   string
	Mode ArchiveMode
	// Until is required when Mode is ArchiveModeUntil, nil otherwise.
	Until *time.Time
	Note  string
}
