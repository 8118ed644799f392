package service

import (
	"medal_stats/internal/repository"
)

type Services struct {
	Medal   *MedalService
	Athlete *AthleteService
	Sport   *SportService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Medal:   NewMedalService(repos.Medal),
		Athlete: NewAthleteService(repos.Athlete),
		Sport:   NewSportService(repos.Sport),
	}
}
