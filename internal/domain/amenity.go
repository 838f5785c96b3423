package domain

type Amenity struct {
	BaseModel
	Name string `db:"name" json:"name" validate:"required"`
}

func NewAmenity() *Amenity {
	return &Amenity{BaseModel: newBaseModel()}
}

func (*Amenity) Kind() Kind { return KindAmenity }
