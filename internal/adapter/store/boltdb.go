package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"kwsearch/internal/domain"
)

// CurrentSchemaVersion is the snapshot storage format version. Increment on
// breaking changes; a mismatched snapshot must be rebuilt with `index`.
const CurrentSchemaVersion = 1

var (
	bucketKeywords = []byte("keywords")
	bucketDocs     = []byte("docs")
	bucketStats    = []byte("stats")
	keyStats       = []byte("index_stats")
	keySchema      = []byte("schema_version")
)

// BoltStore persists a built master index so queries can run in a later
// process without re-indexing. Posting lists are stored in their ranked
// order.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketKeywords, bucketDocs, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// checkSchema rejects snapshots written by an incompatible version.
func (s *BoltStore) checkSchema() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keySchema)
		if data == nil {
			return nil
		}
		var version int
		if err := json.Unmarshal(data, &version); err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		if version != CurrentSchemaVersion {
			return fmt.Errorf("index snapshot has schema version %d, want %d: re-run index", version, CurrentSchemaVersion)
		}
		return nil
	})
}

// SaveIndex replaces the persisted snapshot with the given postings, docs
// and stats in a single transaction.
func (s *BoltStore) SaveIndex(postings map[string][]domain.Occurrence, docs []domain.Document, stats domain.IndexStats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketKeywords, bucketDocs, bucketStats} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		keywords := tx.Bucket(bucketKeywords)
		for kw, occs := range postings {
			data, err := json.Marshal(occs)
			if err != nil {
				return err
			}
			if err := keywords.Put([]byte(kw), data); err != nil {
				return err
			}
		}

		docsBucket := tx.Bucket(bucketDocs)
		for _, doc := range docs {
			data, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			if err := docsBucket.Put([]byte(doc.ID), data); err != nil {
				return err
			}
		}

		statsBucket := tx.Bucket(bucketStats)
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := statsBucket.Put(keyStats, data); err != nil {
			return err
		}
		version, _ := json.Marshal(CurrentSchemaVersion)
		return statsBucket.Put(keySchema, version)
	})
}

// LoadPostings reads the full posting table back from the snapshot.
func (s *BoltStore) LoadPostings() (map[string][]domain.Occurrence, error) {
	postings := make(map[string][]domain.Occurrence)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKeywords).ForEach(func(k, v []byte) error {
			var occs []domain.Occurrence
			if err := json.Unmarshal(v, &occs); err != nil {
				return fmt.Errorf("failed to decode postings for %s: %w", k, err)
			}
			postings[string(k)] = occs
			return nil
		})
	})
	return postings, err
}

// GetPostings reads one keyword's ranked occurrence list. The second return
// value reports whether the keyword is present.
func (s *BoltStore) GetPostings(keyword string) ([]domain.Occurrence, bool, error) {
	var occs []domain.Occurrence
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKeywords).Get([]byte(keyword))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &occs)
	})
	return occs, found, err
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var doc domain.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) GetStats() (domain.IndexStats, error) {
	var stats domain.IndexStats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
