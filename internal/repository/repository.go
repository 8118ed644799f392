package repository

import "medal_stats/internal/storage"

type Repositories struct {
	Medal   MedalRepository
	Athlete AthleteRepository
	Sport   SportRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Medal:   NewMedalRepository(db),
		Athlete: NewAthleteRepository(db),
		Sport:   NewSportRepository(db),
	}
}
