package catalog

import (
	"sort"
	"time"
)

// Property groups one or more variations sharing a name, neighborhood and image.
type Property struct {
	ID           string      `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Name         string      `gorm:"column:name;size:255;not null" json:"name"`
	Neighborhood string      `gorm:"column:neighborhood;size:255" json:"neighborhood"`
	ImageURL     string      `gorm:"column:image_url;type:text" json:"image_url"`
	Variations   []Variation `gorm:"foreignKey:PropertyID;references:ID" json:"variations"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Property) TableName() string { return "properties" }

// Variation is a concrete unit (floor plan) of a property.
type Variation struct {
	ID           string  `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	PropertyID   string  `gorm:"column:property_id;type:varchar(64);not null;index" json:"-"`
	Position     int     `gorm:"column:position;not null;default:0" json:"-"`
	AreaSqm      float64 `gorm:"column:area_sqm;type:decimal(10,2)" json:"area_sqm"`
	BedroomCount int     `gorm:"column:bedroom_count" json:"bedroom_count"`
	Price        float64 `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	DetailURL    string  `gorm:"column:detail_url;type:text" json:"detail_url"`
}

func (Variation) TableName() string { return "property_variations" }

// StartingPrice is the price of the first variation, or 0 without variations.
func (p Property) StartingPrice() float64 {
	if len(p.Variations) == 0 {
		return 0
	}
	return p.Variations[0].Price
}

// Variation finds a variation by id. An empty id selects the first one.
func (p Property) Variation(id string) (*Variation, bool) {
	if len(p.Variations) == 0 {
		return nil, false
	}
	if id == "" {
		v := p.Variations[0]
		return &v, true
	}
	for i := range p.Variations {
		if p.Variations[i].ID == id {
			v := p.Variations[i]
			return &v, true
		}
	}
	return nil, false
}

// SortByStartingPrice orders properties ascending by StartingPrice. Ties
// keep their input order.
func SortByStartingPrice(ps []Property) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].StartingPrice() < ps[j].StartingPrice()
	})
}
