package model

// MentorExchange logs one question/answer round trip with the AI mentor.
//
// swagger:model MentorExchange
type MentorExchange struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
	Source   string `gorm:"size:30" json:"source"`
}

func (MentorExchange) TableName() string {
	return "mentor_exchanges"
}
