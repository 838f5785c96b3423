package domain

type Review struct {
	BaseModel
	PlaceID string `db:"place_id" json:"place_id" validate:"required"`
	UserID  string `db:"user_id" json:"user_id" validate:"required"`
	Text    string `db:"text" json:"text" validate:"required"`
}

func NewReview() *Review {
	return &Review{BaseModel: newBaseModel()}
}

func (*Review) Kind() Kind { return KindReview }
