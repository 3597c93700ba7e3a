package nav

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/dockeep/internal/client/models"
)

type fakeFetcher struct {
	calls []*string
	err   error
}

func (f *fakeFetcher) FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error) {
	f.calls = append(f.calls, folderID)
	if f.err != nil {
		return nil, f.err
	}
	return &models.ArchiveListing{}, nil
}

func folder(id, name string) models.ArchiveFolder {
	return models.ArchiveFolder{ID: id, Name: name}
}

func descend3(t *testing.T, c *Cursor) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Descend(ctx, folder("f1", "one")))
	require.NoError(t, c.Descend(ctx, folder("f2", "two")))
	require.NoError(t, c.Descend(ctx, folder("f3", "three")))
}

func TestCursor_CurrentIsNilAtRoot(t *testing.T) {
	c := NewCursor(&fakeFetcher{})
	assert.Nil(t, c.Current())
}

func TestCursor_DescendScopesFetchToFolder(t *testing.T) {
	f := &fakeFetcher{}
	c := NewCursor(f)

	require.NoError(t, c.Descend(context.Background(), folder("f1", "one")))

	require.Len(t, f.calls, 1)
	require.NotNil(t, f.calls[0])
	assert.Equal(t, "f1", *f.calls[0])
	require.NotNil(t, c.Current())
	assert.Equal(t, "f1", *c.Current())
}

func TestCursor_JumpToTruncates(t *testing.T) {
	f := &fakeFetcher{}
	c := NewCursor(f)
	descend3(t, c)
	require.Equal(t, 3, c.Depth())

	require.NoError(t, c.JumpTo(context.Background(), 0))
	require.Equal(t, 1, c.Depth())
	assert.Equal(t, "f1", *c.Current())
}

func TestCursor_JumpToRoot(t *testing.T) {
	f := &fakeFetcher{}
	c := NewCursor(f)
	descend3(t, c)

	require.NoError(t, c.JumpTo(context.Background(), -1))
	assert.Equal(t, 0, c.Depth())
	assert.Nil(t, c.Current())
	// The root fetch carries a nil folder id.
	assert.Nil(t, f.calls[len(f.calls)-1])
}

func TestCursor_JumpToRejectsBadIndex(t *testing.T) {
	c := NewCursor(&fakeFetcher{})
	descend3(t, c)

	require.ErrorIs(t, c.JumpTo(context.Background(), 3), ErrBadCrumbIndex)
	require.ErrorIs(t, c.JumpTo(context.Background(), -2), ErrBadCrumbIndex)
	assert.Equal(t, 3, c.Depth())
}

func TestCursor_FailedFetchLeavesStackUnchanged(t *testing.T) {
	f := &fakeFetcher{}
	c := NewCursor(f)
	descend3(t, c)
	c.SetQuery("report")

	f.err = errors.New("boom")
	err := c.Descend(context.Background(), folder("f4", "four"))
	require.Error(t, err)
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, "f3", *c.Current())
	assert.Equal(t, "report", c.Query())

	err = c.JumpTo(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, 3, c.Depth())
}

func TestCursor_NavigationResetsQuery(t *testing.T) {
	c := NewCursor(&fakeFetcher{})
	descend3(t, c)

	c.SetQuery("report")
	require.NoError(t, c.JumpTo(context.Background(), 0))
	assert.Equal(t, "", c.Query())

	c.SetQuery("invoice")
	require.NoError(t, c.Descend(context.Background(), folder("f9", "nine")))
	assert.Equal(t, "", c.Query())
}

func TestCursor_RefreshKeepsQueryAndStack(t *testing.T) {
	c := NewCursor(&fakeFetcher{})
	descend3(t, c)
	c.SetQuery("report")

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, "report", c.Query())
}
