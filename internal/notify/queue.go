// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify holds the user-facing notification queue.
package notify

import (
	"sync"
	"time"

	"github.com/koafy/setter-console/models"
)

// DefaultCapacity bounds a queue created with a zero capacity.
const DefaultCapacity = 100

// Queue is an insertion-ordered list of notifications. Entries are only ever
// added or removed, never changed. When a capacity is set the oldest entries
// are dropped on overflow.
//
// Queue is safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	items    []models.Notification
	capacity int
	lastID   int64
	now      func() time.Time
}

// NewQueue returns an empty queue. capacity 0 selects [DefaultCapacity]; a
// negative capacity disables the bound.
func NewQueue(capacity int) *Queue {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &Queue{capacity: capacity, now: time.Now}
}

// Add assigns an id and a timestamp to n, appends it and returns the stored
// value. Ids derive from the creation time in milliseconds and strictly
// increase even when two notifications share a millisecond.
func (q *Queue) Add(n models.Notification) models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	ts := q.now()
	id := ts.UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	n.ID = id
	n.Timestamp = ts
	q.items = append(q.items, n)

	if q.capacity > 0 && len(q.items) > q.capacity {
		drop := len(q.items) - q.capacity
		q.items = append(q.items[:0:0], q.items[drop:]...)
	}

	return n
}

// Dismiss removes the entry with id. It reports whether one was removed.
func (q *Queue) Dismiss(id int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll clears the queue.
func (q *Queue) DismissAll() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

// List returns a copy of the entries in insertion order.
func (q *Queue) List() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.Notification(nil), q.items...)
}

// Len returns the number of entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Expired returns the entries older than ttl at now, oldest first.
func (q *Queue) Expired(now time.Time, ttl time.Duration) []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []models.Notification
	for _, n := range q.items {
		if now.Sub(n.Timestamp) >= ttl {
			out = append(out, n)
		}
	}
	return out
}
