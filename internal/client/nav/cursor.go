// Package nav implements the breadcrumb cursor driving which archived
// folder subtree is currently displayed. Contents are re-fetched from the
// server on every navigation step; nothing is cached across moves.
package nav

import (
	"context"

	"github.com/nmatveev/dockeep/internal/client/models"
)

// Crumb is one step of the path taken into nested archived folders.
type Crumb struct {
	ID   string
	Name string
}

// Fetcher loads the archive listing scoped to a folder id; nil means the
// archive root.
type Fetcher interface {
	FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error)
}

// Cursor is the client-side navigation state over the archive tree. The
// last crumb's id (or nil at the root) is the single source of truth for
// which folder's contents are being requested.
//
// A failed fetch leaves the stack unchanged; the caller surfaces the error
// and may retry manually. There is no automatic retry.
type Cursor struct {
	fetcher Fetcher
	stack   []Crumb
	listing *models.ArchiveListing
	query   string
}

func NewCursor(fetcher Fetcher) *Cursor {
	return &Cursor{fetcher: fetcher}
}

// Current returns the folder id contents are scoped to, nil at the root.
func (c *Cursor) Current() *string {
	if len(c.stack) == 0 {
		return nil
	}
	id := c.stack[len(c.stack)-1].ID
	return &id
}

// Crumbs returns a copy of the breadcrumb stack, root first.
func (c *Cursor) Crumbs() []Crumb {
	out := make([]Crumb, len(c.stack))
	copy(out, c.stack)
	return out
}

// Depth returns the number of crumbs on the stack.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// Listing returns the most recently fetched contents, nil before the
// first successful fetch.
func (c *Cursor) Listing() *models.ArchiveListing {
	return c.listing
}

// Query returns the local search/filter term. It is orthogonal to
// navigation except that changing folders resets it to empty.
func (c *Cursor) Query() string {
	return c.query
}

func (c *Cursor) SetQuery(q string) {
	c.query = q
}

// Refresh re-fetches the contents of the current folder without moving.
// The search term is left alone.
func (c *Cursor) Refresh(ctx context.Context) error {
	listing, err := c.fetcher.FetchArchive(ctx, c.Current())
	if err != nil {
		return err
	}
	c.listing = listing
	return nil
}

// Descend pushes the folder onto the stack and fetches its contents.
// On fetch failure the stack is left as it was.
func (c *Cursor) Descend(ctx context.Context, folder models.ArchiveFolder) error {
	next := append(c.Crumbs(), Crumb{ID: folder.ID, Name: folder.Name})
	return c.commit(ctx, next)
}

// JumpTo truncates the stack to index+1 crumbs and fetches the resulting
// folder's contents. Index -1 jumps to the archive root. On fetch failure
// the stack is left as it was.
func (c *Cursor) JumpTo(ctx context.Context, index int) error {
	if index < -1 || index >= len(c.stack) {
		return ErrBadCrumbIndex
	}
	next := c.Crumbs()[:index+1]
	return c.commit(ctx, next)
}

func (c *Cursor) commit(ctx context.Context, next []Crumb) error {
	var folderID *string
	if len(next) > 0 {
		id := next[len(next)-1].ID
		folderID = &id
	}

	listing, err := c.fetcher.FetchArchive(ctx, folderID)
	if err != nil {
		return err
	}

	c.stack = next
	c.listing = listing
	c.query = ""
	return nil
}
