package models

// MedalTally 是一個國家的金銀銅統計
type MedalTally struct {
	Codigo string `gorm:"column:codigo" json:"codigo"`
	Nome   string `gorm:"column:nome" json:"nome"`
	Ouro   int64  `gorm:"column:ouro" json:"ouro"`
	Prata  int64  `gorm:"column:prata" json:"prata"`
	Bronze int64  `gorm:"column:bronze" json:"bronze"`
}

// Total 獎牌總數
func (t MedalTally) Total() int64 {
	return t.Ouro + t.Prata + t.Bronze
}

// TopTally 排行榜的一列，附帶該國運動員總數
type TopTally struct {
	MedalTally
	TotalAtletas int64 `gorm:"column:total_atletas" json:"totalAtletas"`
}

// RatioTally 附帶金牌比例的一列
type RatioTally struct {
	MedalTally
	Ratio float64 `json:"ratio"`
}

// CountryMedals 單一國家的統計，不含代號
type CountryMedals struct {
	Nome   string `json:"nome"`
	Ouro   int64  `json:"ouro"`
	Prata  int64  `json:"prata"`
	Bronze int64  `json:"bronze"`
}

// AthleteRow 運動員列表的一列，total_athletes 在每一列重複
type AthleteRow struct {
	Athlete
	TotalAthletes int64 `gorm:"column:total_athletes" json:"total_athletes"`
}
