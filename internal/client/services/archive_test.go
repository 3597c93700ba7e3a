package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/common"
)

type fakeArchiveClient struct {
	fakeAuthClient

	archivedDocs    []models.ArchiveRequest
	archivedFolders []models.ArchiveRequest
	restoredDocs    []string
	restoredFolders []string
	listing         *models.ArchiveListing
	fetchErr        error
}

func (f *fakeArchiveClient) FetchArchive(_ context.Context, _ *string) (*models.ArchiveListing, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.listing, nil
}

func (f *fakeArchiveClient) ArchiveDocument(_ context.Context, req models.ArchiveRequest) error {
	f.archivedDocs = append(f.archivedDocs, req)
	return nil
}

func (f *fakeArchiveClient) ArchiveFolder(_ context.Context, req models.ArchiveRequest) error {
	f.archivedFolders = append(f.archivedFolders, req)
	return nil
}

func (f *fakeArchiveClient) RestoreDocument(_ context.Context, id string) error {
	f.restoredDocs = append(f.restoredDocs, id)
	return nil
}

func (f *fakeArchiveClient) RestoreFolder(_ context.Context, id string) error {
	f.restoredFolders = append(f.restoredFolders, id)
	return nil
}

func TestArchiveDocument_Permanent(t *testing.T) {
	client := &fakeArchiveClient{}
	svc := NewArchiveService(client, testLogger())

	err := svc.ArchiveDocument(context.Background(), models.ArchiveRequest{
		ID:   "d1",
		Mode: models.ArchiveModePermanent,
		Note: "obsolete",
	})
	require.NoError(t, err)
	require.Len(t, client.archivedDocs, 1)
	assert.Equal(t, "d1", client.archivedDocs[0].ID)
}

func TestArchiveDocument_UntilRequiresDate(t *testing.T) {
	svc := NewArchiveService(&fakeArchiveClient{}, testLogger())

	err := svc.ArchiveDocument(context.Background(), models.ArchiveRequest{
		ID:   "d1",
		Mode: models.ArchiveModeUntil,
	})
	require.ErrorIs(t, err, common.ErrorValidation)

	until := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	err = svc.ArchiveDocument(context.Background(), models.ArchiveRequest{
		ID:    "d1",
		Mode:  models.ArchiveModeUntil,
		Until: &until,
	})
	require.NoError(t, err)
}

func TestArchiveFolder_BadMode(t *testing.T) {
	svc := NewArchiveService(&fakeArchiveClient{}, testLogger())

	err := svc.ArchiveFolder(context.Background(), models.ArchiveRequest{
		ID:   "f1",
		Mode: "forever",
	})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestRestore_EmptyID(t *testing.T) {
	svc := NewArchiveService(&fakeArchiveClient{}, testLogger())

	require.ErrorIs(t, svc.RestoreDocument(context.Background(), ""), common.ErrorValidation)
	require.ErrorIs(t, svc.RestoreFolder(context.Background(), ""), common.ErrorValidation)
}

func TestRestore_Delegates(t *testing.T) {
	client := &fakeArchiveClient{}
	svc := NewArchiveService(client, testLogger())

	require.NoError(t, svc.RestoreDocument(context.Background(), "d1"))
	require.NoError(t, svc.RestoreFolder(context.Background(), "f1"))
	assert.Equal(t, []string{"d1"}, client.restoredDocs)
	assert.Equal(t, []string{"f1"}, client.restoredFolders)
}

func TestFetchArchive_PassesThrough(t *testing.T) {
	want := &models.ArchiveListing{
		Folders:   []models.ArchiveFolder{{ID: "f1", Name: "Old"}},
		Documents: []models.ArchiveDocument{{ID: "d1", Title: "report"}},
	}
	client := &fakeArchiveClient{listing: want}
	svc := NewArchiveService(client, testLogger())

	got, err := svc.FetchArchive(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchArchive_ErrorPassesThrough(t *testing.T) {
	client := &fakeArchiveClient{fetchErr: api.ErrUnavailable}
	svc := NewArchiveService(client, testLogger())

	_, err := svc.FetchArchive(context.Background(), nil)
	require.ErrorIs(t, err, api.ErrUnavailable)
}
