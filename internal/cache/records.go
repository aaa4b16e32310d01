package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const recordTTL = 5 * time.Minute

// Kind names one cached record family.
const (
	KindCompanies = "companies"
	KindJobs      = "jobs"
)

// Store caches full list payloads and detail records per record kind.
// Server state is the source of truth: the most recently resolved response
// wins, and successful writes invalidate instead of patching locally so
// server-computed fields (timestamps, derived state) never drift.
type Store struct {
	cache *ristretto.Cache[string, any]
}

func New() (*Store, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 10000,
		MaxCost:     32 * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Store{cache: c}, nil
}

func listKey(kind string) string { return kind + "|list" }

func recordKey(kind, id string) string { return kind + "|" + id }

// GetList returns the cached full list for a kind, ok reports a hit.
func (s *Store) GetList(kind string) (any, bool) {
	s.cache.Wait()
	return s.cache.Get(listKey(kind))
}

// SetList stores a freshly fetched full list. Last write wins.
func (s *Store) SetList(kind string, records any) {
	s.cache.SetWithTTL(listKey(kind), records, 1, recordTTL)
	s.cache.Wait()
}

// GetRecord returns a cached detail record.
func (s *Store) GetRecord(kind, id string) (any, bool) {
	s.cache.Wait()
	return s.cache.Get(recordKey(kind, id))
}

// SetRecord stores a detail record.
func (s *Store) SetRecord(kind, id string, record any) {
	s.cache.SetWithTTL(recordKey(kind, id), record, 1, recordTTL)
	s.cache.Wait()
}

// Invalidate drops the list for a kind plus any detail records named by ids.
// Called after every successful create/update/delete that could affect them.
func (s *Store) Invalidate(kind string, ids ...string) {
	s.cache.Del(listKey(kind))
	for _, id := range ids {
		s.cache.Del(recordKey(kind, id))
	}
	s.cache.Wait()
}
