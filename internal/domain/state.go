package domain

type State struct {
	BaseModel
	Name string `db:"name" json:"name" validate:"required"`
}

func NewState() *State {
	return &State{BaseModel: newBaseModel()}
}

func (*State) Kind() Kind { return KindState }
