package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/aldawaly/go-backoffice/internal/permissions"
)

// sessionModel is the single-row persistence shape; the fixed primary key
// keeps the table to exactly one token/user snapshot per installation.
type sessionModel struct {
	bun.BaseModel `bun:"table:backoffice_session,alias:bs"`

	ID        int64     `bun:"id,pk"`
	Token     string    `bun:"token,notnull"`
	UserJSON  []byte    `bun:"user_json,type:blob"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

const sessionRowID = 1

// BunStore persists the session snapshot in a local database so a restarted
// back-office process resumes authenticated.
type BunStore struct {
	db *bun.DB
}

var _ Store = (*BunStore)(nil)

// NewBunStore constructs a Bun-backed store and ensures its table exists.
func NewBunStore(ctx context.Context, db *bun.DB) (*BunStore, error) {
	if db == nil {
		return nil, errors.New("session: bun store requires a database")
	}
	if _, err := db.NewCreateTable().Model((*sessionModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, err
	}
	return &BunStore{db: db}, nil
}

func (s *BunStore) Load(ctx context.Context) (Snapshot, error) {
	var model sessionModel
	if err := s.db.NewSelect().Model(&model).Where("id = ?", sessionRowID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNoSession
		}
		return Snapshot{}, err
	}

	snapshot := Snapshot{Token: model.Token}
	if len(model.UserJSON) > 0 {
		var user permissions.User
		if err := json.Unmarshal(model.UserJSON, &user); err != nil {
			return Snapshot{}, err
		}
		snapshot.User = &user
	}
	return snapshot, nil
}

func (s *BunStore) Save(ctx context.Context, snapshot Snapshot) error {
	var userJSON []byte
	if snapshot.User != nil {
		encoded, err := json.Marshal(snapshot.User)
		if err != nil {
			return err
		}
		userJSON = encoded
	}

	model := sessionModel{
		ID:        sessionRowID,
		Token:     snapshot.Token,
		UserJSON:  userJSON,
		UpdatedAt: time.Now().UTC(),
	}

	var existing sessionModel
	err := s.db.NewSelect().Model(&existing).Where("id = ?", sessionRowID).Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.NewInsert().Model(&model).Exec(ctx)
		return err
	case err != nil:
		return err
	default:
		_, err = s.db.NewUpdate().
			Model(&model).
			Column("token", "user_json", "updated_at").
			WherePK().
			Exec(ctx)
		return err
	}
}

func (s *BunStore) Clear(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*sessionModel)(nil)).
		Where("id = ?", sessionRowID).
		Exec(ctx)
	return err
}
