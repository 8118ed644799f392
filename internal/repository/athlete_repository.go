package repository

import (
	"context"

	"medal_stats/internal/models"
	"medal_stats/internal/storage"
)

const queryAthletesByNOC = `
SELECT atleta.id AS id, atleta.nome AS nome, atleta.genero AS genero, atleta.idade AS idade, atleta.noc AS noc,
	COUNT(*) OVER () AS total_athletes
FROM atleta
WHERE atleta.noc = ?
ORDER BY atleta.id`

type AthleteRepository interface {
	FindByNOC(ctx context.Context, code string) ([]models.AthleteRow, error)
}

type athleteRepository struct {
	baseRepository
}

func NewAthleteRepository(db *storage.PostgresDB) AthleteRepository {
	return &athleteRepository{baseRepository: newBaseRepository(db)}
}

// FindByNOC 查詢某國的所有運動員，國家代號以參數綁定
func (r *athleteRepository) FindByNOC(ctx context.Context, code string) ([]models.AthleteRow, error) {
	rows := []models.AthleteRow{}
	err := r.scan(ctx, &rows, queryAthletesByNOC, code)
	return rows, err
}
