package models

// 這些模型對應由外部匯入程序建立的唯讀資料表，本服務不做遷移也不寫入

// NOC 表示一個國家奧會
type NOC struct {
	Codigo string `gorm:"column:codigo;primaryKey" json:"codigo"` // 3 碼代號
	Nome   string `gorm:"column:nome" json:"nome"`
}

func (NOC) TableName() string { return "noc" }

// Athlete 表示一位運動員
type Athlete struct {
	ID     int64  `gorm:"column:id;primaryKey" json:"id"`
	Nome   string `gorm:"column:nome" json:"nome"`
	Genero string `gorm:"column:genero" json:"genero"`
	Idade  *int64 `gorm:"column:idade" json:"idade"` // 資料集中可能缺少年齡
	NOC    string `gorm:"column:noc" json:"noc"`
}

func (Athlete) TableName() string { return "atleta" }

// MedalKind 獎牌種類，在資料表中以單一字元儲存
type MedalKind string

const (
	MedalGold   MedalKind = "O" // ouro
	MedalSilver MedalKind = "P" // prata
	MedalBronze MedalKind = "B" // bronze
)

// Medal 表示一面獎牌
type Medal struct {
	Atleta int64     `gorm:"column:atleta"`
	Evento int64     `gorm:"column:evento"`
	Tipo   MedalKind `gorm:"column:tipo"`
}

func (Medal) TableName() string { return "medalha" }

// Event 表示一個比賽項目
type Event struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	Esporte int64 `gorm:"column:esporte"`
}

func (Event) TableName() string { return "evento" }

// Sport 表示一個運動類別
type Sport struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Nome string `gorm:"column:nome" json:"nome"`
}

func (Sport) TableName() string { return "esporte" }
