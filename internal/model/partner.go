package model

// Partner is a developer whose projects the brokerage sells. Properties
// reference a partner by name, not by id.
type Partner struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"not null"`
	Logo            string  `json:"logo" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text;not null"`
	Established     *int    `json:"established"`
	TotalProperties *int    `json:"totalProperties"`
}
