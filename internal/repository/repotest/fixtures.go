package repotest

import "medal_stats/internal/models"

// Fixture 回傳一個小型資料集（金/銀/銅）：
// CHN 8/2/2、USA 5/3/2、JPN 3/5/4、GBR 2/1/0、KEN 2/1/0、BRA 1/0/4。
// FRA 有運動員但沒有獎牌，ITA 沒有運動員。
func Fixture() *Store {
	s := &Store{
		NOCs: []models.NOC{
			{Codigo: "USA", Nome: "United States"},
			{Codigo: "CHN", Nome: "China"},
			{Codigo: "BRA", Nome: "Brazil"},
			{Codigo: "KEN", Nome: "Kenya"},
			{Codigo: "GBR", Nome: "Great Britain"},
			{Codigo: "FRA", Nome: "France"},
			{Codigo: "ITA", Nome: "Italy"},
			{Codigo: "JPN", Nome: "Japan"},
		},
		Sports: []models.Sport{
			{ID: 1, Nome: "Athletics"},
			{ID: 2, Nome: "Swimming"},
			{ID: 3, Nome: "Gymnastics"},
		},
		Events: []models.Event{
			{ID: 10, Esporte: 1},
			{ID: 20, Esporte: 2},
			{ID: 30, Esporte: 3},
		},
	}

	age := int64(24)
	nextID := int64(1)
	addAthlete := func(noc, nome, genero string) int64 {
		id := nextID
		nextID++
		a := models.Athlete{ID: id, Nome: nome, Genero: genero, NOC: noc}
		if id%2 == 1 {
			a.Idade = &age
		}
		s.Athletes = append(s.Athletes, a)
		return id
	}
	addMedals := func(athlete int64, event int64, kind models.MedalKind, count int) {
		for i := 0; i < count; i++ {
			s.Medals = append(s.Medals, models.Medal{Atleta: athlete, Evento: event, Tipo: kind})
		}
	}

	usa1 := addAthlete("USA", "Simone Biles", "F")
	usa2 := addAthlete("USA", "Noah Lyles", "M")
	addAthlete("USA", "Katie Ledecky", "F")
	addMedals(usa1, 30, models.MedalGold, 4)
	addMedals(usa2, 10, models.MedalGold, 1)
	addMedals(usa2, 10, models.MedalSilver, 3)
	addMedals(usa1, 30, models.MedalBronze, 2)

	chn1 := addAthlete("CHN", "Pan Zhanle", "M")
	chn2 := addAthlete("CHN", "Zhang Yufei", "F")
	addMedals(chn1, 20, models.MedalGold, 6)
	addMedals(chn2, 20, models.MedalGold, 2)
	addMedals(chn2, 20, models.MedalSilver, 2)
	addMedals(chn1, 20, models.MedalBronze, 2)

	bra1 := addAthlete("BRA", "Rebeca Andrade", "F")
	addMedals(bra1, 30, models.MedalGold, 1)
	addMedals(bra1, 30, models.MedalBronze, 4)

	ken1 := addAthlete("KEN", "Faith Kipyegon", "F")
	addMedals(ken1, 10, models.MedalGold, 2)
	addMedals(ken1, 10, models.MedalSilver, 1)

	gbr1 := addAthlete("GBR", "Keely Hodgkinson", "F")
	addMedals(gbr1, 10, models.MedalGold, 2)
	addMedals(gbr1, 10, models.MedalSilver, 1)

	jpn1 := addAthlete("JPN", "Shinnosuke Oka", "M")
	addMedals(jpn1, 30, models.MedalGold, 3)
	addMedals(jpn1, 30, models.MedalSilver, 5)
	addMedals(jpn1, 30, models.MedalBronze, 4)

	addAthlete("FRA", "Leon Marchand", "M")

	return s
}
