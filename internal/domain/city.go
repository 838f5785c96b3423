package domain

type City struct {
	BaseModel
	StateID string `db:"state_id" json:"state_id" validate:"required"`
	Name    string `db:"name" json:"name" validate:"required"`
}

func NewCity() *City {
	return &City{BaseModel: newBaseModel()}
}

func (*City) Kind() Kind { return KindCity }
