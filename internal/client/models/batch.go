package models

import "github.com/google/uuid"

// BatchItem is one staged file in the batch upload queue, together with the
// metadata the user annotated it with and its in-flight/terminal state.
type BatchItem struct {
	// ID identifies the item within one batch queue instance.
	ID string

	// LocalPath is the path of the selected file on disk.
	LocalPath string
	// FileName is the declared name sent to the backend.
	FileName string
	// Size is the declared file size in bytes.
	Size int64

	// Mutable metadata fields. Empty fields are omitted from the upload
	// entirely rather than sent as empty strings.
	Title       string
	TargetPath  string
	Department  string
	Nature      string
	Site        string
	Perimeter   string
	Description string

	// Uploading is true while the item's own request is in flight.
	Uploading bool

	// Result is written once, after the item's request settles.
	Result *BatchResult
}

// BatchResult is the terminal state of one batch item. Local and Err are
// mutually exclusive: a populated Local means the document was created even
// if the secondary perimeter sync failed (MleanOK false).
type BatchResult struct {
	Local   *Document
	MleanOK bool
	Err     error
}

// Succeeded reports whether the primary document creation went through.
func (r *BatchResult) Succeeded() bool {
	return r != nil && r.Local != nil && r.Err == nil
}

// NewBatchItem stages a local file for upload.
func NewBatchItem(localPath, fileName string, size int64) *BatchItem {
	return &BatchItem{
		ID:        uuid.NewString(),
		LocalPath: localPath,
		FileName:  fileName,
		Size:      size,
	}
}

// BatchQueue holds pending batch items in a map keyed by item id, with a
// separate slice preserving staging order. Updates are O(1) by id instead
// of a linear scan-and-replace over an array.
type BatchQueue struct {
	order []string
	byID  map[string]*BatchItem
}

func NewBatchQueue() *BatchQueue {
	return &BatchQueue{byID: make(map[string]*BatchItem)}
}

// Add appends an item to the queue.
func (q *BatchQueue) Add(item *BatchItem) {
	if _, ok := q.byID[item.ID]; ok {
		return
	}
	q.order = append(q.order, item.ID)
	q.byID[item.ID] = item
}

// Get returns the item with the given id, or nil.
func (q *BatchQueue) Get(id string) *BatchItem {
	return q.byID[id]
}

// Remove deletes the item with the given id, keeping the order of the rest.
func (q *BatchQueue) Remove(id string) {
	if _, ok := q.byID[id]; !ok {
		return
	}
	delete(q.byID, id)
	for i, oid := range q.order {
		if oid == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// Items returns the queued items in staging order.
func (q *BatchQueue) Items() []*BatchItem {
	items := make([]*BatchItem, 0, len(q.order))
	for _, id := range q.order {
		items = append(items, q.byID[id])
	}
	return items
}

// Len returns the number of queued items.
func (q *BatchQueue) Len() int {
	return len(q.order)
}

// PruneSucceeded removes items whose upload succeeded, leaving failed items
// in place so the user can inspect and retry them. It returns how many
// items were pruned.
func (q *BatchQueue) PruneSucceeded() int {
	pruned := 0
	for _, item := range q.Items() {
		if item.Result.Succeeded() {
			q.Remove(item.ID)
			pruned++
		}
	}
	return pruned
}
