package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Store — адаптер Postgres, реализующий порт service.PassRepository
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

// InsertIssuedPass — сохраняет запись о выпуске
func (s *Store) InsertIssuedPass(ctx context.Context, p service.IssuedPassRecord) error {
	cmd := `INSERT INTO ` + tableIssuedPasses + ` (` +
		colID + `, ` + colObjectID + `, ` + colClassID + `, ` + colIssuer + `, ` +
		colSaveURL + `, ` + colToken + `, ` + colCreatedAt + `)
            VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := s.pool.Exec(ctx, cmd,
		p.ID, p.ObjectID, p.ClassID, p.Issuer, p.SaveURL, p.Token, p.CreatedAt,
	)
	return err
}

// GetIssuedPass — возвращает запись или ErrNotFound
func (s *Store) GetIssuedPass(ctx context.Context, id string) (service.IssuedPassRecord, error) {
	var rec service.IssuedPassRecord
	err := s.pool.QueryRow(ctx, `SELECT `+colID+`, `+colObjectID+`, `+colClassID+`, `+colIssuer+`, `+colSaveURL+`, `+colToken+`, `+colCreatedAt+` FROM `+tableIssuedPasses+` WHERE `+colID+`=$1`, id).
		Scan(&rec.ID, &rec.ObjectID, &rec.ClassID, &rec.Issuer, &rec.SaveURL, &rec.Token, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.IssuedPassRecord{}, service.ErrNotFound
		}
		return service.IssuedPassRecord{}, err
	}
	return rec, nil
}
