package model

import "gorm.io/datatypes"

type Service struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	// Symbolic key resolved by the client against its icon lookup table.
	Icon string `json:"icon" gorm:"not null"`

	Features datatypes.JSONSlice[string] `json:"features"`
	Category string                      `json:"category" gorm:"not null"`
}
