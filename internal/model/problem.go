package model

type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// swagger:model Problem
type Problem struct {
	BaseModel
	Slug       string     `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Title      string     `gorm:"size:200;not null" json:"title"`
	Difficulty Difficulty `gorm:"size:10;not null" json:"difficulty"`
	Pattern    string     `gorm:"size:100" json:"pattern"`
	URL        string     `gorm:"size:255" json:"url"`
	Order      int        `gorm:"default:0" json:"order"`
	SheetID    uint       `gorm:"index" json:"sheetId"`
}

func (Problem) TableName() string {
	return "problems"
}
