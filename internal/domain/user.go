package domain

type User struct {
	BaseModel
	Email     string `db:"email" json:"email" validate:"required"`
	Password  string `db:"password" json:"password,omitempty" validate:"required"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

func NewUser() *User {
	return &User{BaseModel: newBaseModel()}
}

func (*User) Kind() Kind { return KindUser }
