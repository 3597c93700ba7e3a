package pathtree

import (
	"sort"
	"time"

	"github.com/nmatveev/dockeep/internal/client/models"
)

// FolderRow is a derived, ephemeral aggregate over every document whose
// path falls underneath the folder at the current traversal depth. It has
// no identity beyond one Materialize pass.
type FolderRow struct {
	// Key is the full folder path, a stable row identity within one pass.
	Key   string
	Name  string
	Count int
	Size  int64
}

// FileRow is a document sitting immediately inside the current folder.
type FileRow struct {
	Name      string
	Size      int64
	UpdatedAt *time.Time
	Doc       models.Document
}

// Row is either a FolderRow or a FileRow.
type Row interface{ isRow() }

func (FolderRow) isRow() {}
func (FileRow) isRow()   {}

// Materialize computes the rows to display for current: immediate child
// folders (aggregated with descendant counts and sizes) followed by
// immediate files. Folders sort before files; within each group names sort
// lexicographically ascending, with file ties broken by document id so the
// output never depends on input order.
//
// The computation is pure: identical (documents, current) inputs yield an
// identical row list, and the source collection is never mutated.
func Materialize(docs []models.Document, current string) []Row {
	cur := Normalize(current)
	curSegs := Segments(cur)
	curDepth := len(curSegs)

	folders := make(map[string]*FolderRow)
	var files []FileRow

	for _, d := range docs {
		if d.Path == "" {
			// Unlocated documents never appear in the tree.
			continue
		}

		segs := Segments(d.Path)
		if len(segs) <= curDepth {
			continue
		}
		outside := false
		for i := 0; i < curDepth; i++ {
			if segs[i] != curSegs[i] {
				outside = true
				break
			}
		}
		if outside {
			continue
		}

		if len(segs) == curDepth+1 {
			files = append(files, FileRow{
				Name:      segs[curDepth],
				Size:      d.Size,
				UpdatedAt: d.UpdatedAt,
				Doc:       d,
			})
			continue
		}

		// Deeper subtree: aggregate into the folder named by the next segment.
		name := segs[curDepth]
		f, ok := folders[name]
		if !ok {
			f = &FolderRow{Key: Join(cur, name), Name: name}
			folders[name] = f
		}
		f.Count++
		f.Size += d.Size
	}

	folderRows := make([]FolderRow, 0, len(folders))
	for _, f := range folders {
		folderRows = append(folderRows, *f)
	}
	sort.Slice(folderRows, func(i, j int) bool {
		return folderRows[i].Name < folderRows[j].Name
	})
	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].Doc.ID < files[j].Doc.ID
	})

	rows := make([]Row, 0, len(folderRows)+len(files))
	for _, f := range folderRows {
		rows = append(rows, f)
	}
	for _, f := range files {
		rows = append(rows, f)
	}
	return rows
}
