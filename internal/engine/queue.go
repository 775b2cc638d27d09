package engine

import (
	"sync"
	"time"

	"github.com/Ytemiloluwa/paycore/pkg/transaction"
)

// TransactionQueue is a thread-safe FIFO of pending transactions with
// a blocking, timeout-bounded dequeue, built on a mutex-guarded slice
// plus a condition variable rather than a channel, since a channel
// receive has no native bounded-timeout form.
type TransactionQueue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []*transaction.Transaction
}

// NewTransactionQueue returns an empty queue ready for use.
func NewTransactionQueue() *TransactionQueue {
	q := &TransactionQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends t to the tail and wakes one waiting consumer. It
// never blocks beyond acquiring the mutex.
func (q *TransactionQueue) Enqueue(t *transaction.Transaction) {
	q.mu.Lock()
	q.items = append(q.items, t)
	q.mu.Unlock()
	q.cond.Signal()
}

// Dequeue blocks until the queue is non-empty or timeout elapses. On
// success it removes and returns the head and true; on timeout it
// returns (nil, false).
func (q *TransactionQueue) Dequeue(timeout time.Duration) (*transaction.Transaction, bool) {
	deadline := time.Now().Add(timeout)

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, false
		}
		// sync.Cond has no native timeout: a timer goroutine issues a
		// Broadcast to unblock a waiter once remaining elapses, same
		// as any other wakeup. The loop condition re-checks len and
		// the deadline to tell a real enqueue from a timeout wakeup.
		timer := time.AfterFunc(remaining, q.cond.Broadcast)
		q.cond.Wait()
		timer.Stop()
	}

	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Size returns the current item count under the lock.
func (q *TransactionQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Empty reports whether the queue currently holds no items.
func (q *TransactionQueue) Empty() bool {
	return q.Size() == 0
}
