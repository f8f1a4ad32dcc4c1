// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"sync"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

// Feed is an in-process push hub keyed by account id. It keeps the latest
// document of every account so new subscribers receive it immediately.
type Feed struct {
	mu     sync.Mutex
	docs   map[string]models.StatusDocument
	subs   map[string]map[uint64]*mailbox
	nextID uint64

	logger *logger.Logger
}

// NewFeed returns an empty Feed.
func NewFeed(logger *logger.Logger) *Feed {
	return &Feed{
		docs:   make(map[string]models.StatusDocument),
		subs:   make(map[string]map[uint64]*mailbox),
		logger: logger,
	}
}

// Subscribe implements [Source].
func (f *Feed) Subscribe(accountID string, onUpdate func(models.Snapshot), onError func(error)) Unsubscribe {
	box := newMailbox(onUpdate, onError)

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	if f.subs[accountID] == nil {
		f.subs[accountID] = make(map[uint64]*mailbox)
	}
	f.subs[accountID][id] = box

	if doc, ok := f.docs[accountID]; ok {
		box.update(Normalize(doc))
	} else {
		box.update(MissingSnapshot())
	}
	f.mu.Unlock()

	f.logger.Debug().Str("func", "Feed.Subscribe").Str("account_id", accountID).Uint64("subscription", id).Msg("subscribed")

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[accountID], id)
			if len(f.subs[accountID]) == 0 {
				delete(f.subs, accountID)
			}
			f.mu.Unlock()

			box.close()
			f.logger.Debug().Str("func", "Feed.Unsubscribe").Str("account_id", accountID).Uint64("subscription", id).Msg("unsubscribed")
		})
	}
}

// Publish replaces the document of accountID and fans it out. A nil doc
// removes the document; subscribers then receive [MissingSnapshot].
func (f *Feed) Publish(accountID string, doc *models.StatusDocument) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := MissingSnapshot()
	if doc == nil {
		delete(f.docs, accountID)
	} else {
		f.docs[accountID] = *doc
		snap = Normalize(*doc)
	}

	for _, box := range f.subs[accountID] {
		box.update(snap)
	}

	f.logger.Debug().
		Str("func", "Feed.Publish").
		Str("account_id", accountID).
		Str("status", snap.Status.Status.String()).
		Int("subscribers", len(f.subs[accountID])).
		Msg("status document published")
}

// FailAll reports err to every subscriber of every account. It is used when
// the receiver feeding the hub stops.
func (f *Feed) FailAll(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, boxes := range f.subs {
		for _, box := range boxes {
			box.fail(err)
			n++
		}
	}

	f.logger.Warn().Str("func", "Feed.FailAll").Err(err).Int("subscribers", n).Msg("status feed failed")
}

// Current returns the stored document of accountID.
func (f *Feed) Current(accountID string) (models.StatusDocument, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[accountID]
	return doc, ok
}

// Subscribers returns the number of live subscriptions for accountID.
func (f *Feed) Subscribers(accountID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[accountID])
}
