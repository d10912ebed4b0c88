package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/dbx"
)

// SQLiteStore keeps the session in the metadata table of the local
// database, one row per key.
type SQLiteStore struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, repo: metadata.NewSQLiteRepository(db)}
}

func (s *SQLiteStore) Load(ctx context.Context) (models.TokenSet, error) {
	m, err := s.repo.GetMany(ctx, common.SessionKeys...)
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("load session: %w", err)
	}
	return models.TokenSet{
		AccessToken:  m[common.KeyAccessToken],
		IDToken:      m[common.KeyIDToken],
		RefreshToken: m[common.KeyRefreshToken],
		Username:     m[common.KeyUsername],
	}, nil
}

// Save replaces the stored session atomically. Empty fields remove their
// key so a partial set never leaves values of an older session behind.
func (s *SQLiteStore) Save(ctx context.Context, t models.TokenSet) error {
	values := map[string]string{
		common.KeyAccessToken:  t.AccessToken,
		common.KeyIDToken:      t.IDToken,
		common.KeyRefreshToken: t.RefreshToken,
		common.KeyUsername:     t.Username,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range common.SessionKeys {
			v := values[key]
			if v == "" {
				if err := repo.Delete(ctx, key); err != nil {
					return err
				}
				continue
			}
			if err := repo.Set(ctx, key, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
