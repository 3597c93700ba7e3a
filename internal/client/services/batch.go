package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/client/pathtree"
	"github.com/nmatveev/dockeep/internal/common"
	"github.com/nmatveev/dockeep/internal/logging"
)

// BatchSummary aggregates one SubmitAll pass. The batch "completing" does
// not mean every item succeeded; failed items stay queued for retry.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	// Synced counts items whose mLean perimeter sync also went through.
	Synced int
	// Pruned counts succeeded items removed from the queue afterwards.
	Pruned int
}

// BatchService owns the batch upload queue and the submission pipeline.
//
// Items are processed strictly sequentially: item i+1's request is never
// dispatched before item i's request settles. One outstanding network
// request at a time keeps per-item state transitions race-free without
// locks and avoids hammering the backend.
type BatchService interface {
	// Stage adds a local file to the queue.
	Stage(path string) (*models.BatchItem, error)

	// Queue exposes the pending items for annotation and inspection.
	Queue() *models.BatchQueue

	// SubmitAll uploads every queued item in staging order. Failures are
	// isolated per item; the pass always runs to the end. Succeeded items
	// are pruned from the queue, failed ones remain for retry.
	SubmitAll(ctx context.Context) (*BatchSummary, error)
}

type batchService struct {
	client api.Client
	queue  *models.BatchQueue
	logger logging.Logger
}

func NewBatchService(client api.Client, logger logging.Logger) BatchService {
	return &batchService{client: client, queue: models.NewBatchQueue(), logger: logger}
}

func (s *batchService) Stage(path string) (*models.BatchItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stage file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("stage file: %s is a directory", path)
	}

	item := models.NewBatchItem(path, filepath.Base(path), info.Size())
	s.queue.Add(item)
	return item, nil
}

func (s *batchService) Queue() *models.BatchQueue {
	return s.queue
}

func (s *batchService) SubmitAll(ctx context.Context) (*BatchSummary, error) {
	items := s.queue.Items()
	if len(items) == 0 {
		return nil, common.ErrorEmptyBatch
	}

	summary := &BatchSummary{Total: len(items)}

	for _, item := range items {
		item.Uploading = true
		item.Result = nil

		res := s.submitOne(ctx, item)

		item.Result = res
		item.Uploading = false

		if res.Succeeded() {
			summary.Succeeded++
			if res.MleanOK {
				summary.Synced++
			}
		} else {
			summary.Failed++
			s.logger.Error(ctx, "batch item failed", "file", item.FileName, "error", res.Err)
		}
	}

	summary.Pruned = s.queue.PruneSucceeded()

	s.logger.Info(ctx, "batch completed",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return summary, nil
}

// submitOne runs the full pipeline for a single item. Any returned result
// is terminal: either Local is set (possibly with a failed secondary sync)
// or Err is set. Errors never propagate out of the loop.
func (s *batchService) submitOne(ctx context.Context, item *models.BatchItem) *models.BatchResult {
	if err := validateBatchItem(item); err != nil {
		return &models.BatchResult{Err: fmt.Errorf("%w: %v", common.ErrorValidation, err)}
	}

	title := item.Title
	if title == "" {
		// Missing title falls back to the file's own name.
		title = item.FileName
	}

	f, err := os.Open(item.LocalPath)
	if err != nil {
		return &models.BatchResult{Err: fmt.Errorf("open file: %w", err)}
	}

	doc, err := s.client.CreateDocument(ctx, api.CreateDocumentRequest{
		FileName: item.FileName,
		Content:  f,
		Fields: map[string]string{
			"title":       title,
			"path":        pathtree.Join(pathtree.Normalize(item.TargetPath), item.FileName),
			"department":  item.Department,
			"nature":      item.Nature,
			"site":        item.Site,
			"perimeter":   item.Perimeter,
			"description": item.Description,
		},
	})
	_ = f.Close()
	if err != nil {
		return &models.BatchResult{Err: err}
	}

	res := &models.BatchResult{Local: doc}

	// Secondary, best-effort classification sync. Its failure never rolls
	// back the local creation and never aborts the batch.
	if item.Perimeter == "" {
		s.logger.Warn(ctx, "no perimeter selected, skipping mlean sync", "file", item.FileName)
		return res
	}

	sf, err := os.Open(item.LocalPath)
	if err != nil {
		s.logger.Warn(ctx, "mlean sync skipped, file unreadable", "file", item.FileName, "error", err)
		return res
	}
	sync, err := s.client.SyncPerimeter(ctx, api.PerimeterSyncRequest{
		Title:       title,
		Perimeter:   item.Perimeter,
		Description: item.Description,
		FileName:    item.FileName,
		Content:     sf,
	})
	_ = sf.Close()
	if err != nil {
		s.logger.Warn(ctx, "mlean sync failed", "file", item.FileName, "error", err)
		return res
	}

	res.MleanOK = true

	// Attach the minted identifiers to the local document, silently.
	fields := make(map[string]any)
	if sync.MleanID != "" {
		fields["mlean_id"] = sync.MleanID
	}
	if sync.Ref != "" {
		fields["mlean_ref"] = sync.Ref
	}
	if len(fields) > 0 {
		if err := s.client.PatchDocument(ctx, doc.ID, fields, true); err != nil {
			s.logger.Warn(ctx, "failed to attach mlean identifiers", "id", doc.ID, "error", err)
		}
	}
	return res
}

func validateBatchItem(item *models.BatchItem) error {
	return validation.ValidateStruct(item,
		validation.Field(&item.FileName, validation.Required),
		validation.Field(&item.Title, validation.Length(0, 255)),
		validation.Field(&item.Perimeter, validation.Length(0, 64)),
		validation.Field(&item.Description, validation.Length(0, 2000)),
	)
}
