// Package history persists recipe generations in an embedded BoltDB file.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
)

const generationsBucket = "generations"

// Store is the persistence interface the HTTP layer depends on.
type Store interface {
	Save(ctx context.Context, gen recipe.Generation) error
	Get(ctx context.Context, id string) (recipe.Generation, error)
	Recent(ctx context.Context, limit int) ([]recipe.Generation, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// BoltStore implements Store using BoltDB
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore creates a new BoltDB-backed generation store
func NewBoltStore(dbPath string) (*BoltStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New(errors.CodeIoError, "history", fmt.Sprintf("failed to create directory %s", dir), err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		// Check if error is due to database being locked by another process
		if strings.Contains(err.Error(), "resource temporarily unavailable") ||
			strings.Contains(err.Error(), "database is locked") ||
			strings.Contains(err.Error(), "timeout") {
			return nil, errors.New(errors.CodeIoError, "history",
				fmt.Sprintf("database file '%s' is already in use by another server instance. "+
					"Use CHEF_STORE_PATH to specify a different database file", dbPath), err)
		}
		return nil, errors.New(errors.CodeIoError, "history", "failed to open bolt db", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(generationsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.New(errors.CodeIoError, "history", "failed to create generations bucket", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the BoltDB connection
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Save stores a generation, overwriting any previous record with the same ID
func (s *BoltStore) Save(ctx context.Context, gen recipe.Generation) error {
	if gen.ID == "" {
		return errors.New(errors.CodeMissingParameter, "history", "generation ID is required", nil)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(generationsBucket))

		data, err := json.Marshal(gen)
		if err != nil {
			return errors.New(errors.CodeInternalError, "history", "failed to marshal generation", err)
		}

		if err := bucket.Put([]byte(gen.ID), data); err != nil {
			return errors.New(errors.CodeIoError, "history", "failed to store generation", err)
		}

		return nil
	})
}

// Get retrieves a generation by ID
func (s *BoltStore) Get(ctx context.Context, id string) (recipe.Generation, error) {
	var gen recipe.Generation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(generationsBucket))
		data := bucket.Get([]byte(id))

		if data == nil {
			return errors.New(errors.CodeNotFound, "history", fmt.Sprintf("generation %s not found", id), nil)
		}

		return json.Unmarshal(data, &gen)
	})

	if err != nil {
		return recipe.Generation{}, err
	}

	return gen, nil
}

// Recent returns up to limit generations, newest first
func (s *BoltStore) Recent(ctx context.Context, limit int) ([]recipe.Generation, error) {
	var gens []recipe.Generation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(generationsBucket))

		return bucket.ForEach(func(k, v []byte) error {
			var gen recipe.Generation
			if err := json.Unmarshal(v, &gen); err != nil {
				return errors.New(errors.CodeInternalError, "history", fmt.Sprintf("failed to unmarshal generation %s", k), err)
			}
			gens = append(gens, gen)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(gens, func(i, j int) bool {
		return gens[i].CreatedAt.After(gens[j].CreatedAt)
	})

	if limit > 0 && len(gens) > limit {
		gens = gens[:limit]
	}

	return gens, nil
}

// Delete removes a generation by ID
func (s *BoltStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(generationsBucket))

		if bucket.Get([]byte(id)) == nil {
			return errors.New(errors.CodeNotFound, "history", fmt.Sprintf("generation %s not found", id), nil)
		}

		return bucket.Delete([]byte(id))
	})
}
