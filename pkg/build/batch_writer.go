package build

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc is a callback that performs database writes inside a transaction.
type WriteFunc func(tx *sql.Tx) error

// BatchWriter buffers write operations and flushes them in batches inside a
// single transaction each, keeping sqlite commits off the per-record path.
type BatchWriter struct {
	mu     sync.Mutex
	buf    []WriteFunc
	cap    int
	closed bool
	wg     sync.WaitGroup

	commitCh chan []WriteFunc
	db       *sql.DB

	errMu   sync.Mutex
	lastErr error
}

// NewBatchWriter creates a writer that flushes every batchSize submissions
// and on Close.
func NewBatchWriter(db *sql.DB, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = 50
	}
	bw := &BatchWriter{
		buf:      make([]WriteFunc, 0, batchSize),
		cap:      batchSize,
		commitCh: make(chan []WriteFunc, 2),
		db:       db,
	}
	bw.wg.Add(1)
	go bw.committer()
	return bw
}

// Submit enqueues a write function.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		bw.flushLocked()
	}
	return nil
}

// flushLocked assumes bw.mu is held. Sending to the committer while holding
// the lock propagates backpressure to Submit when commits fall behind.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)
	bw.commitCh <- batch
}

func (bw *BatchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		if err := bw.executeBatch(batch); err != nil {
			bw.errMu.Lock()
			if bw.lastErr == nil {
				bw.lastErr = err
			}
			bw.errMu.Unlock()
		}
	}
}

func (bw *BatchWriter) executeBatch(batch []WriteFunc) error {
	tx, err := bw.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range batch {
		if err := w(tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch (%d items): %w", len(batch), err)
	}
	return nil
}

// Close flushes remaining writes, waits for pending commits and returns the
// first error seen during execution.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	if len(bw.buf) > 0 {
		bw.flushLocked()
	}
	bw.mu.Unlock()

	close(bw.commitCh)
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.lastErr
}

var ErrBatchWriterClosed = &BatchWriterError{"batch writer closed"}

type BatchWriterError struct{ msg string }

func (e *BatchWriterError) Error() string { return e.msg }
