package domain

type Place struct {
	BaseModel
	CityID          string  `db:"city_id" json:"city_id" validate:"required"`
	UserID          string  `db:"user_id" json:"user_id" validate:"required"`
	Name            string  `db:"name" json:"name" validate:"required"`
	Description     string  `db:"description" json:"description"`
	NumberRooms     int     `db:"number_rooms" json:"number_rooms"`
	NumberBathrooms int     `db:"number_bathrooms" json:"number_bathrooms"`
	MaxGuest        int     `db:"max_guest" json:"max_guest"`
	PriceByNight    int     `db:"price_by_night" json:"price_by_night"`
	Latitude        float64 `db:"latitude" json:"latitude"`
	Longitude       float64 `db:"longitude" json:"longitude"`
	AmenityIDs      IDList  `db:"amenity_ids" json:"amenity_ids"`
}

func NewPlace() *Place {
	return &Place{BaseModel: newBaseModel(), AmenityIDs: IDList{}}
}

func (*Place) Kind() Kind { return KindPlace }
