package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SettingModel is one row of the key/value settings table.
type SettingModel struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type SettingsRepository struct {
	db    *DB
	query string
}

func NewSettingsRepository(db *DB, table string) *SettingsRepository {
	return &SettingsRepository{
		db:    db,
		query: fmt.Sprintf(`SELECT key, value FROM %s WHERE key = ANY($1)`, pgx.Identifier{table}.Sanitize()),
	}
}

// FetchCredentials returns the values stored under keys. Missing keys are
// simply absent from the map; domain.ErrSettingsNotFound is returned when
// none of them exist.
func (r *SettingsRepository) FetchCredentials(ctx context.Context, keys []string) (map[string]string, error) {
	rows, err := r.db.Pool.Query(ctx, r.query, keys)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[SettingModel])
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	if len(models) == 0 {
		return nil, domain.ErrSettingsNotFound
	}

	return domain.CredentialsFromRows(toDomainCredentials(models)), nil
}

func toDomainCredentials(models []SettingModel) []domain.MerchantCredential {
	out := make([]domain.MerchantCredential, 0, len(models))
	for _, m := range models {
		out = append(out, domain.MerchantCredential{Key: m.Key, Value: m.Value})
	}
	return out
}
