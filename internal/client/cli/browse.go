package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/nmatveev/dockeep/internal/client/pathtree"
)

// List prints the contents of the current folder: child folders first,
// then documents, exactly as materialized from the flat path collection.
func (a *App) List(ctx context.Context) error {
	rows, err := a.documentService.Browse(ctx, a.currentPath)
	if err != nil {
		printlnFn("Listing failed:", err.Error())
		return err
	}
	if len(rows) == 0 {
		printlnFn("Empty folder.")
		return nil
	}

	for _, row := range rows {
		switch r := row.(type) {
		case pathtree.FolderRow:
			printlnFn(fmt.Sprintf("  %-40s %4d items  %s",
				r.Name+"/", r.Count, humanize.Bytes(uint64(r.Size))))
		case pathtree.FileRow:
			updated := ""
			if r.UpdatedAt != nil {
				updated = r.UpdatedAt.Format("2006-01-02")
			}
			printlnFn(fmt.Sprintf("  %-40s [id %s]  %s  %s",
				r.Name, r.Doc.ID, humanize.Bytes(uint64(r.Size)), updated))
		}
	}
	return nil
}

// ChangeDir descends into the named child folder. The folder must exist in
// the current listing; the tree is virtual, so there is nothing to create.
func (a *App) ChangeDir(ctx context.Context, name string) error {
	rows, err := a.documentService.Browse(ctx, a.currentPath)
	if err != nil {
		printlnFn("Listing failed:", err.Error())
		return err
	}

	for _, row := range rows {
		if f, ok := row.(pathtree.FolderRow); ok && f.Name == name {
			a.currentPath = f.Key
			return nil
		}
	}

	printlnFn("No such folder:", name)
	return fmt.Errorf("no such folder: %s", name)
}

// Up moves to the parent folder; at the root it stays put.
func (a *App) Up() {
	a.currentPath = pathtree.Parent(a.currentPath)
}

// PrintWorkingDir prints the current virtual folder path.
func (a *App) PrintWorkingDir() {
	printlnFn(a.currentPath)
}

// Find prints documents whose name or path contains the query.
func (a *App) Find(ctx context.Context, query string) error {
	docs, err := a.documentService.Find(ctx, query)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}
	if len(docs) == 0 {
		printlnFn("No matches.")
		return nil
	}

	for _, d := range docs {
		printlnFn(fmt.Sprintf("  %-40s [id %s]  %s", d.DisplayName(), d.ID, d.Path))
	}
	return nil
}

// Edit prompts for name=value metadata pairs and applies them as a partial
// update to the document.
func (a *App) Edit(ctx context.Context, id string) error {
	pairs, err := GetFields(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		printlnFn("Nothing to update.")
		return nil
	}

	fields := make(map[string]any, len(pairs))
	for k, v := range pairs {
		fields[k] = v
	}

	if err := a.documentService.Patch(ctx, id, fields); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated.")
	return nil
}
