package model

// Property Types
type PropertyType string

const (
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeApartment PropertyType = "apartment"
)

type Property struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Type        PropertyType `json:"type" gorm:"not null;index"`
	Description string       `json:"description" gorm:"type:text;not null"`
	ImageURL    string       `json:"imageUrl" gorm:"not null"`

	// Developer name, matched by value against Partner.Name. Not a foreign
	// key: dangling names are possible and accepted.
	Partner string `json:"partner" gorm:"not null;index"`

	Price     *int    `json:"price"`
	Location  *string `json:"location"`
	Bedrooms  *int    `json:"bedrooms"`
	Bathrooms *int    `json:"bathrooms"`
	Area      *int    `json:"area"` // sq ft
	Featured  bool    `json:"featured" gorm:"default:false"`
}

// PropertyPatch carries a partial update. Nil fields are left untouched.
type PropertyPatch struct {
	Title       *string       `json:"title" validate:"omitempty,min=1"`
	Type        *PropertyType `json:"type" validate:"omitempty,oneof=villa townhouse apartment"`
	Description *string       `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string       `json:"imageUrl" validate:"omitempty,min=1"`
	Partner     *string       `json:"partner" validate:"omitempty,min=1"`
	Price       *int          `json:"price" validate:"omitempty,min=0"`
	Location    *string       `json:"location"`
	Bedrooms    *int          `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int          `json:"bathrooms" validate:"omitempty,min=0"`
	Area        *int          `json:"area" validate:"omitempty,min=0"`
	Featured    *bool         `json:"featured"`
}

func (p PropertyPatch) Apply(property *Property) {
	if p.Title != nil {
		property.Title = *p.Title
	}
	if p.Type != nil {
		property.Type = *p.Type
	}
	if p.Description != nil {
		property.Description = *p.Description
	}
	if p.ImageURL != nil {
		property.ImageURL = *p.ImageURL
	}
	if p.Partner != nil {
		property.Partner = *p.Partner
	}
	if p.Price != nil {
		property.Price = p.Price
	}
	if p.Location != nil {
		property.Location = p.Location
	}
	if p.Bedrooms != nil {
		property.Bedrooms = p.Bedrooms
	}
	if p.Bathrooms != nil {
		property.Bathrooms = p.Bathrooms
	}
	if p.Area != nil {
		property.Area = p.Area
	}
	if p.Featured != nil {
		property.Featured = *p.Featured
	}
}
