package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_marketplace/internal/models"
	"github.com/SscSPs/contractor_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, first_name, last_name, profession, balance, type, created_at, updated_at`

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for profile data.
func newPgxProfileRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func scanProfile(row rowScanner) (models.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.Profession,
		&m.Balance,
		&m.Type,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindProfileByID retrieves a profile by its id.
func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	m, err := scanProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %d: %w", profileID, apperrors.ErrNotFound)
		}
		return nil, apperrors.StoreFailure("failed to find profile", err)
	}
	profile := mapping.ToDomainProfile(m)
	return &profile, nil
}
