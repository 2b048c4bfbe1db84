package ps

import (
	"fmt"
	"path"

	"github.com/nickyhof/PlutoQuery/core"
)

type write struct {
	path   string
	data   []byte
	remove bool
}

// Batch collects writes and removals that are committed together as a single
// transaction.
type Batch struct {
	persistence *Persistence
	writes      []write
}

// BeginBatch starts a new batch of writes.
func (persistence *Persistence) BeginBatch() (*Batch, error) {
	if err := persistence.ensureInitialized(); err != nil {
		return nil, err
	}

	return &Batch{persistence: persistence}, nil
}

// Put queues a record write at database/table/key.
func (b *Batch) Put(database, table, key string, data []byte) {
	b.PutFile(path.Join(database, table, key), data)
}

// PutFile queues a write at an arbitrary path in the tree.
func (b *Batch) PutFile(filePath string, data []byte) {
	b.writes = append(b.writes, write{path: filePath, data: data})
}

// Delete queues the removal of the record at database/table/key. Removing a
// missing record is a no-op.
func (b *Batch) Delete(database, table, key string) {
	b.writes = append(b.writes, write{path: path.Join(database, table, key), remove: true})
}

// Len returns the number of queued writes and removals.
func (b *Batch) Len() int {
	return len(b.writes)
}

// Commit applies all queued writes and removals and creates one commit. A
// later change to the same path wins.
func (b *Batch) Commit(identity core.Identity, message string) (Transaction, error) {
	if len(b.writes) == 0 {
		return Transaction{}, ErrEmptyBatch
	}

	p := b.persistence
	p.mu.Lock()
	defer p.mu.Unlock()

	currentTree, err := p.getCurrentTree()
	if err != nil {
		return Transaction{}, err
	}

	changes := make([]TreeChange, 0, len(b.writes))
	for _, w := range b.writes {
		if w.remove {
			changes = append(changes, TreeChange{Path: w.path, IsDelete: true})
			continue
		}
		blobHash, err := p.createBlob(w.data)
		if err != nil {
			return Transaction{}, fmt.Errorf("failed to create blob for %s: %w", w.path, err)
		}
		changes = append(changes, TreeChange{Path: w.path, BlobHash: blobHash})
	}

	newTree, err := p.batchUpdateTree(currentTree, changes)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to update tree: %w", err)
	}

	txn, err := p.createCommitDirect(newTree, identity, message)
	if err != nil {
		return Transaction{}, err
	}

	if err := p.syncWorktree(); err != nil {
		return Transaction{}, fmt.Errorf("failed to sync worktree: %w", err)
	}

	b.writes = nil
	return txn, nil
}
