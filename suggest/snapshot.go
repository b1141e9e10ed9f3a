package suggest

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyperjump/mitsumori/catalog"
	"github.com/hyperjump/mitsumori/index"
)

// Snapshot is an immutable view of one loaded catalog together with its
// indices. Queries always run against a single snapshot, so a concurrent
// reload never mixes old and new data in one result set.
type Snapshot struct {
	id       string
	store    *catalog.Store
	indices  *index.Indices
	loadedAt time.Time
}

func newSnapshot(store *catalog.Store, indices *index.Indices) *Snapshot {
	return &Snapshot{
		id:       uuid.New().String(),
		store:    store,
		indices:  indices,
		loadedAt: time.Now(),
	}
}

// ID returns the unique identifier assigned at load time.
func (s *Snapshot) ID() string { return s.id }

// Store returns the catalog store backing this snapshot.
func (s *Snapshot) Store() *catalog.Store { return s.store }

// Indices returns the search indices built for this snapshot.
func (s *Snapshot) Indices() *index.Indices { return s.indices }

// LoadedAt returns when the snapshot was created.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }
