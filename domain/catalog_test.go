package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogState_Transitions(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1660000000, 0)
	items := []*DisplayItem{{TokenId: 1, Price: "1.0"}, {TokenId: 2, Price: "2.5"}}

	s := CatalogState{Status: LoadStatusNotLoaded}
	req.False(s.IsEmpty())

	s, gen := s.Begin()
	req.Equal(uint64(1), gen)
	req.Equal(LoadStatusLoading, s.Status)
	req.False(s.IsEmpty())

	s, ok := s.Complete(gen, items, nil, now)
	req.True(ok)
	req.Equal(LoadStatusLoaded, s.Status)
	req.Equal(items, s.Items)
	req.Equal(now, s.LoadedAt)
	req.Empty(s.Err)

	item, found := s.Find(2)
	req.True(found)
	req.Equal("2.5", item.Price)
	_, found = s.Find(3)
	req.False(found)

	s, gen = s.Begin()
	s, ok = s.Complete(gen, nil, errors.New("rpc down"), now)
	req.True(ok)
	req.Equal(LoadStatusLoaded, s.Status)
	req.Empty(s.Items)
	req.NotNil(s.Items)
	req.Equal("rpc down", s.Err)
	req.True(s.IsEmpty())
}

func TestCatalogState_OverlappingLoads(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1660000000, 0)
	first := []*DisplayItem{{TokenId: 1}}
	second := []*DisplayItem{{TokenId: 2}}

	s := CatalogState{Status: LoadStatusNotLoaded}
	s, gen1 := s.Begin()
	s, gen2 := s.Begin()

	// the newer load finishes first
	s, ok := s.Complete(gen2, second, nil, now)
	req.True(ok)
	req.Equal(LoadStatusLoaded, s.Status)

	// the older one is dropped
	s, ok = s.Complete(gen1, first, nil, now)
	req.False(ok)
	req.Equal(second, s.Items)

	// older load completes while a newer one is still running
	s, gen3 := s.Begin()
	s, gen4 := s.Begin()
	s, ok = s.Complete(gen3, first, nil, now)
	req.True(ok)
	req.Equal(first, s.Items)
	req.Equal(LoadStatusLoading, s.Status)
	s, ok = s.Complete(gen4, second, nil, now)
	req.True(ok)
	req.Equal(LoadStatusLoaded, s.Status)
	req.Equal(second, s.Items)
}

func TestCatalogState_Snapshot(t *testing.T) {
	s := CatalogState{Status: LoadStatusLoaded, Items: []*DisplayItem{{TokenId: 1}}}
	snap := s.Snapshot()
	snap.Items[0] = &DisplayItem{TokenId: 9}
	require.Equal(t, int64(1), s.Items[0].TokenId)
}
