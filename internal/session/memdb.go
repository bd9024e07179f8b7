package session

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

// MemDBStore is the default Store, backed by an in-memory database so
// sessions live exactly as long as the process.
type MemDBStore struct {
	db *memdb.MemDB
}

type sessionRecord struct {
	ID         string
	LoggedIn   bool
	Username   string
	CardNumber string
}

func NewMemDBStore() (*MemDBStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"session": {
				Name: "session",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session database: %w", err)
	}
	return &MemDBStore{db: db}, nil
}

func (s *MemDBStore) Get(ctx context.Context, id string) (Data, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("session", "id", id)
	if err != nil {
		return Data{}, fmt.Errorf("fetching session: %w", err)
	}
	if raw == nil {
		return Data{}, ErrNotFound
	}

	rec := raw.(*sessionRecord)
	return Data{
		LoggedIn:   rec.LoggedIn,
		Username:   rec.Username,
		CardNumber: rec.CardNumber,
	}, nil
}

func (s *MemDBStore) Put(ctx context.Context, id string, data Data) error {
	txn := s.db.Txn(true)

	rec := &sessionRecord{
		ID:         id,
		LoggedIn:   data.LoggedIn,
		Username:   data.Username,
		CardNumber: data.CardNumber,
	}
	if err := txn.Insert("session", rec); err != nil {
		txn.Abort()
		return fmt.Errorf("storing session: %w", err)
	}

	txn.Commit()
	return nil
}

func (s *MemDBStore) Destroy(ctx context.Context, id string) error {
	txn := s.db.Txn(true)

	_, err := txn.DeleteAll("session", "id", id)
	if err != nil {
		txn.Abort()
		return fmt.Errorf("destroying session: %w", err)
	}

	txn.Commit()
	return nil
}
