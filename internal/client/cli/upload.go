package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/common"
)

// Stage adds a local file to the batch upload queue.
func (a *App) Stage(path string) error {
	item, err := a.batchService.Stage(path)
	if err != nil {
		printlnFn("Staging failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Staged %s (%s)", item.FileName, humanize.Bytes(uint64(item.Size))))
	return nil
}

// ShowQueue prints the batch queue with per-item state.
func (a *App) ShowQueue() {
	items := a.batchService.Queue().Items()
	if len(items) == 0 {
		printlnFn("Batch queue is empty.")
		return
	}

	for i, item := range items {
		printlnFn(fmt.Sprintf("  %2d  %-40s %-10s %s",
			i+1, item.FileName, humanize.Bytes(uint64(item.Size)), itemStatus(item)))
	}
}

// Annotate prompts for name=value metadata pairs and applies the known
// ones to the n-th queued item.
func (a *App) Annotate(n int) error {
	item := a.nthQueued(n)
	if item == nil {
		return fmt.Errorf("no such batch item: %d", n)
	}

	pairs, err := GetFields(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	for name, value := range pairs {
		switch name {
		case "title":
			item.Title = value
		case "path":
			item.TargetPath = value
		case "department":
			item.Department = value
		case "nature":
			item.Nature = value
		case "site":
			item.Site = value
		case "perimeter":
			item.Perimeter = value
		case "description":
			item.Description = value
		default:
			printlnFn("Unknown field:", name)
		}
	}
	return nil
}

// Unstage removes the n-th item from the queue.
func (a *App) Unstage(n int) error {
	item := a.nthQueued(n)
	if item == nil {
		return fmt.Errorf("no such batch item: %d", n)
	}
	a.batchService.Queue().Remove(item.ID)
	printlnFn("Removed", item.FileName)
	return nil
}

// Submit uploads the whole queue sequentially and prints the outcome.
func (a *App) Submit(ctx context.Context) error {
	summary, err := a.batchService.SubmitAll(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyBatch) {
			printlnFn("Batch queue is empty.")
			return nil
		}
		printlnFn("Submit failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Uploaded %d of %d, %d synced.",
		summary.Succeeded, summary.Total, summary.Synced))
	if summary.Failed > 0 {
		printlnFn(fmt.Sprintf("%d failed, kept in the queue. Use 'batch' to inspect and 'submit' to retry.", summary.Failed))
	}
	return nil
}

func (a *App) nthQueued(n int) *models.BatchItem {
	items := a.batchService.Queue().Items()
	if n < 1 || n > len(items) {
		printlnFn("No such batch item:", n)
		return nil
	}
	return items[n-1]
}

func itemStatus(item *models.BatchItem) string {
	switch {
	case item.Uploading:
		return "uploading"
	case item.Result == nil:
		return "pending"
	case item.Result.Succeeded() && item.Result.MleanOK:
		return "done, synced"
	case item.Result.Succeeded():
		return "done"
	default:
		return "failed: " + item.Result.Err.Error()
	}
}
