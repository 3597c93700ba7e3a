package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/client/nav"
)

// Archive prompts for mode, retention date and note, then archives the
// document (or folder, when folder is true) with the given id.
func (a *App) Archive(ctx context.Context, id string, folder bool) error {
	mode, err := getSimpleText(a.reader, "Archive mode (permanent/until)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.ArchiveRequest{ID: id, Mode: models.ArchiveMode(mode)}

	if req.Mode == models.ArchiveModeUntil {
		raw, err := getSimpleText(a.reader, "Archived until (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}
		until, err := time.Parse("2006-01-02", raw)
		if err != nil {
			printlnFn("Bad date:", raw)
			return err
		}
		req.Until = &until
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	req.Note = note

	if folder {
		err = a.archiveService.ArchiveFolder(ctx, req)
	} else {
		err = a.archiveService.ArchiveDocument(ctx, req)
	}
	if err != nil {
		printlnFn("Archiving failed:", err.Error())
		return err
	}

	printlnFn("Archived.")
	return nil
}

// Archived enters the archive browser: a nested loop navigating the
// server-driven archive tree with a breadcrumb cursor.
func (a *App) Archived(ctx context.Context) error {
	cursor := nav.NewCursor(a.archiveService)
	if err := cursor.Refresh(ctx); err != nil {
		printlnFn("Archive unavailable:", err.Error())
		return err
	}
	a.printArchive(cursor)

	for {
		printlnFn(fmt.Sprintf("archive %s> ", crumbPath(cursor)))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: ls, cd <n>, jump <n>, root, pwd, search <term>, restore <n>, restorefolder <n>, refresh, back")

		case "ls":
			a.printArchive(cursor)

		case "cd":
			a.archiveDescend(ctx, cursor, args)

		case "jump":
			if len(args) == 0 {
				printlnFn("Usage: jump <crumb number>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Bad crumb number:", args[0])
				continue
			}
			if err := cursor.JumpTo(ctx, n-1); err != nil {
				printlnFn("Jump failed:", err.Error())
				continue
			}
			a.printArchive(cursor)

		case "root":
			if err := cursor.JumpTo(ctx, -1); err != nil {
				printlnFn("Jump failed:", err.Error())
				continue
			}
			a.printArchive(cursor)

		case "pwd":
			printlnFn(crumbPath(cursor))

		case "search":
			cursor.SetQuery(strings.Join(args, " "))
			a.printArchive(cursor)

		case "restore":
			a.archiveRestore(ctx, cursor, args, false)

		case "restorefolder":
			a.archiveRestore(ctx, cursor, args, true)

		case "refresh":
			if err := cursor.Refresh(ctx); err != nil {
				printlnFn("Refresh failed:", err.Error())
				continue
			}
			a.printArchive(cursor)

		case "back", "exit", "quit":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) archiveDescend(ctx context.Context, cursor *nav.Cursor, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: cd <folder number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Bad folder number:", args[0])
		return
	}
	folders := visibleFolders(cursor)
	if n < 1 || n > len(folders) {
		printlnFn("No such folder number:", args[0])
		return
	}
	if err := cursor.Descend(ctx, folders[n-1]); err != nil {
		printlnFn("Navigation failed:", err.Error())
		return
	}
	a.printArchive(cursor)
}

func (a *App) archiveRestore(ctx context.Context, cursor *nav.Cursor, args []string, folder bool) {
	if len(args) == 0 {
		printlnFn("Usage: restore <row number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Bad row number:", args[0])
		return
	}

	if folder {
		folders := visibleFolders(cursor)
		if n < 1 || n > len(folders) {
			printlnFn("No such folder number:", args[0])
			return
		}
		err = a.archiveService.RestoreFolder(ctx, folders[n-1].ID)
	} else {
		docs := visibleDocuments(cursor)
		if n < 1 || n > len(docs) {
			printlnFn("No such document number:", args[0])
			return
		}
		err = a.archiveService.RestoreDocument(ctx, docs[n-1].ID)
	}
	if err != nil {
		printlnFn("Restore failed:", err.Error())
		return
	}

	printlnFn("Restored.")
	if err := cursor.Refresh(ctx); err != nil {
		printlnFn("Refresh failed:", err.Error())
		return
	}
	a.printArchive(cursor)
}

func (a *App) printArchive(cursor *nav.Cursor) {
	listing := cursor.Listing()
	if listing == nil {
		return
	}

	folders := visibleFolders(cursor)
	docs := visibleDocuments(cursor)

	if len(folders) == 0 && len(docs) == 0 {
		printlnFn("Nothing here.")
		return
	}

	for i, f := range folders {
		printlnFn(fmt.Sprintf("  %2d  %-40s %s", i+1, f.Name+"/", archivedWhen(f.ArchivedAt, f.ArchivedUntil)))
	}
	for i, d := range docs {
		printlnFn(fmt.Sprintf("  %2d  %-40s %s", i+1, d.Title, archivedWhen(d.ArchivedAt, d.ArchivedUntil)))
	}
}

// visibleFolders applies the cursor's local search term to the listing.
func visibleFolders(cursor *nav.Cursor) []models.ArchiveFolder {
	listing := cursor.Listing()
	if listing == nil {
		return nil
	}
	q := strings.ToLower(cursor.Query())
	if q == "" {
		return listing.Folders
	}
	var out []models.ArchiveFolder
	for _, f := range listing.Folders {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

func visibleDocuments(cursor *nav.Cursor) []models.ArchiveDocument {
	listing := cursor.Listing()
	if listing == nil {
		return nil
	}
	q := strings.ToLower(cursor.Query())
	if q == "" {
		return listing.Documents
	}
	var out []models.ArchiveDocument
	for _, d := range listing.Documents {
		if strings.Contains(strings.ToLower(d.Title), q) {
			out = append(out, d)
		}
	}
	return out
}

// crumbPath renders the breadcrumb stack as a slash path, "/" at the root.
func crumbPath(cursor *nav.Cursor) string {
	crumbs := cursor.Crumbs()
	if len(crumbs) == 0 {
		return "/"
	}
	names := make([]string, len(crumbs))
	for i, c := range crumbs {
		names[i] = c.Name
	}
	return "/" + strings.Join(names, "/")
}

func archivedWhen(at, until *time.Time) string {
	s := ""
	if at != nil {
		s = "archived " + at.Format("2006-01-02")
	}
	if until != nil {
		s += " until " + until.Format("2006-01-02")
	}
	return s
}
