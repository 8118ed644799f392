package repository

import (
	"context"

	"medal_stats/internal/models"
	"medal_stats/internal/storage"
)

// 三種獎牌的條件加總，所有統計查詢共用
const tallyColumns = `
	SUM(CASE WHEN medalha.tipo = 'O' THEN 1 ELSE 0 END) AS ouro,
	SUM(CASE WHEN medalha.tipo = 'P' THEN 1 ELSE 0 END) AS prata,
	SUM(CASE WHEN medalha.tipo = 'B' THEN 1 ELSE 0 END) AS bronze`

// 金牌、銀牌、銅牌依序遞減，最後用代號排序讓結果穩定
const tallyOrder = `ORDER BY ouro DESC, prata DESC, bronze DESC, noc.codigo ASC`

const (
	queryTally = `
SELECT noc.codigo AS codigo, noc.nome AS nome,` + tallyColumns + `
FROM noc
JOIN atleta ON noc.codigo = atleta.noc
JOIN medalha ON atleta.id = medalha.atleta
GROUP BY noc.codigo, noc.nome
` + tallyOrder

	queryTallyByCountry = `
SELECT noc.codigo AS codigo, noc.nome AS nome,` + tallyColumns + `
FROM noc
JOIN atleta ON noc.codigo = atleta.noc
JOIN medalha ON atleta.id = medalha.atleta
WHERE noc.codigo = ?
GROUP BY noc.codigo, noc.nome`

	queryTop = `
SELECT noc.codigo AS codigo, noc.nome AS nome,` + tallyColumns + `,
	(SELECT COUNT(*) FROM atleta a WHERE a.noc = noc.codigo) AS total_atletas
FROM noc
JOIN atleta ON noc.codigo = atleta.noc
JOIN medalha ON atleta.id = medalha.atleta
GROUP BY noc.codigo, noc.nome
` + tallyOrder + `
LIMIT ?`

	queryTallyAboveTotal = `
SELECT noc.codigo AS codigo, noc.nome AS nome,` + tallyColumns + `
FROM noc
JOIN atleta ON noc.codigo = atleta.noc
JOIN medalha ON atleta.id = medalha.atleta
GROUP BY noc.codigo, noc.nome
HAVING SUM(CASE WHEN medalha.tipo IN ('O', 'P', 'B') THEN 1 ELSE 0 END) > ?`

	queryTallyBySport = `
SELECT noc.codigo AS codigo, noc.nome AS nome,` + tallyColumns + `
FROM noc
JOIN atleta ON noc.codigo = atleta.noc
JOIN medalha ON atleta.id = medalha.atleta
JOIN evento ON medalha.evento = evento.id
JOIN esporte ON evento.esporte = esporte.id
WHERE CAST(esporte.id AS TEXT) = ?
GROUP BY noc.codigo, noc.nome
` + tallyOrder
)

type MedalRepository interface {
	Tally(ctx context.Context) ([]models.MedalTally, error)
	TallyByCountry(ctx context.Context, code string) ([]models.MedalTally, error)
	Top(ctx context.Context, n int) ([]models.TopTally, error)
	TallyAboveTotal(ctx context.Context, minTotal int) ([]models.MedalTally, error) // 總數嚴格大於 minTotal
	TallyBySport(ctx context.Context, sportID string) ([]models.MedalTally, error)
}

type medalRepository struct {
	baseRepository
}

func NewMedalRepository(db *storage.PostgresDB) MedalRepository {
	return &medalRepository{baseRepository: newBaseRepository(db)}
}

func (r *medalRepository) Tally(ctx context.Context) ([]models.MedalTally, error) {
	rows := []models.MedalTally{}
	err := r.scan(ctx, &rows, queryTally)
	return rows, err
}

func (r *medalRepository) TallyByCountry(ctx context.Context, code string) ([]models.MedalTally, error) {
	rows := []models.MedalTally{}
	err := r.scan(ctx, &rows, queryTallyByCountry, code)
	return rows, err
}

func (r *medalRepository) Top(ctx context.Context, n int) ([]models.TopTally, error) {
	rows := []models.TopTally{}
	err := r.scan(ctx, &rows, queryTop, n)
	return rows, err
}

func (r *medalRepository) TallyAboveTotal(ctx context.Context, minTotal int) ([]models.MedalTally, error) {
	rows := []models.MedalTally{}
	err := r.scan(ctx, &rows, queryTallyAboveTotal, minTotal)
	return rows, err
}

func (r *medalRepository) TallyBySport(ctx context.Context, sportID string) ([]models.MedalTally, error) {
	rows := []models.MedalTally{}
	err := r.scan(ctx, &rows, queryTallyBySport, sportID)
	return rows, err
}
