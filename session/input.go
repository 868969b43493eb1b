package session

import "github.com/plus3/fieldtris/field"

// KeyQueue collects key presses from any goroutine and hands them to the
// frame loop one per frame.
type KeyQueue struct {
	keys chan field.Key
}

// NewKeyQueue returns a queue holding up to size pending presses.
func NewKeyQueue(size int) *KeyQueue {
	return &KeyQueue{keys: make(chan field.Key, size)}
}

// Push queues k. It reports false and drops the key when the queue is full.
func (q *KeyQueue) Push(k field.Key) bool {
	select {
	case q.keys <- k:
		return true
	default:
		return false
	}
}

// ReadKey returns the oldest pending key, if any.
func (q *KeyQueue) ReadKey() (field.Key, bool) {
	select {
	case k := <-q.keys:
		return k, true
	default:
		return field.KeyNone, false
	}
}

// Pending returns the number of queued keys.
func (q *KeyQueue) Pending() int {
	return len(q.keys)
}
