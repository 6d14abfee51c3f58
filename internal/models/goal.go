package model

type Goal struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Tasks []Task `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
