package domain

import (
	"time"

	"github.com/x-xyz/marketfront/base/ctx"
)

type LoadStatus string

const (
	LoadStatusNotLoaded LoadStatus = "not-loaded"
	LoadStatusLoading   LoadStatus = "loading"
	LoadStatusLoaded    LoadStatus = "loaded"
)

// EmptyCatalogMessage is shown once a load completed without items
const EmptyCatalogMessage = "No items in marketplace"

// CatalogState is the displayed catalog. It only changes through Begin and
// Complete, which never mutate the receiver.
type CatalogState struct {
	Status LoadStatus     `json:"status"`
	Items  []*DisplayItem `json:"items"`
	// Err is the error of the load being displayed, if it failed
	Err      string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitempty"`

	// started is the generation of the latest started load, applied the
	// generation of the load whose result is displayed
	started uint64
	applied uint64
}

// Begin starts a new load and returns its generation
func (s CatalogState) Begin() (CatalogState, uint64) {
	s.started++
	s.Status = LoadStatusLoading
	return s, s.started
}

// Complete applies the result of load gen. A result older than the one
// being displayed is dropped and ok is false. A failed load displays an
// empty catalog.
func (s CatalogState) Complete(gen uint64, items []*DisplayItem, err error, now time.Time) (next CatalogState, ok bool) {
	if gen <= s.applied {
		return s, false
	}
	s.applied = gen
	if err != nil {
		s.Items = []*DisplayItem{}
		s.Err = err.Error()
	} else {
		s.Items = items
		s.Err = ""
	}
	s.LoadedAt = now
	if gen >= s.started {
		s.Status = LoadStatusLoaded
	}
	return s, true
}

// Snapshot copies the item slice so callers can't modify the state
func (s CatalogState) Snapshot() CatalogState {
	items := make([]*DisplayItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// IsEmpty reports whether the "no items" message should be shown
func (s CatalogState) IsEmpty() bool {
	return s.Status == LoadStatusLoaded && len(s.Items) == 0
}

// Find returns the displayed item with tokenId
func (s CatalogState) Find(tokenId int64) (*DisplayItem, bool) {
	for _, item := range s.Items {
		if item.TokenId == tokenId {
			return item, true
		}
	}
	return nil, false
}

type CatalogUseCase interface {
	// Load reads the unsold items, enriches them and replaces the catalog
	Load(ctx.Ctx) ([]*DisplayItem, error)
	State() CatalogState
	ListingPrice(ctx.Ctx) (string, error)
}
