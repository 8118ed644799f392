package repository

import (
	"context"
	"fmt"

	"medal_stats/internal/storage"
)

// baseRepository 封裝所有唯讀查詢共用的執行方式
type baseRepository struct {
	db *storage.PostgresDB
}

func newBaseRepository(db *storage.PostgresDB) baseRepository {
	return baseRepository{db: db}
}

// scan 在查詢超時內執行一個固定的參數化查詢，並把所有列依欄位名稱掃描到 dest
func (r baseRepository) scan(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}
