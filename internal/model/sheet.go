package model

// Sheet is a curated collection of interview problems (Blind 75 and friends).
//
// swagger:model Sheet
type Sheet struct {
	BaseModel
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Problems    []Problem `gorm:"foreignKey:SheetID" json:"problems,omitempty"`
}

func (Sheet) TableName() string {
	return "sheets"
}
