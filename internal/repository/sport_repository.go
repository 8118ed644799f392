package repository

import (
	"context"

	"medal_stats/internal/models"
	"medal_stats/internal/storage"
)

// 不排序，保持資料庫回傳的順序
const querySports = `SELECT esporte.id AS id, esporte.nome AS nome FROM esporte`

type SportRepository interface {
	FindAll(ctx context.Context) ([]models.Sport, error)
}

type sportRepository struct {
	baseRepository
}

func NewSportRepository(db *storage.PostgresDB) SportRepository {
	return &sportRepository{baseRepository: newBaseRepository(db)}
}

func (r *sportRepository) FindAll(ctx context.Context) ([]models.Sport, error) {
	sports := []models.Sport{}
	err := r.scan(ctx, &sports, querySports)
	return sports, err
}
