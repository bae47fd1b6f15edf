package domain

// Client is a traveller. Clients are created once through the API and are
// immutable afterwards.
//
// The validate tags are read by the service layer before any insert.
type Client struct {
	ID        int
	FirstName string `validate:"required,max=120"`
	LastName  string `validate:"required,max=120"`
	Email     string `validate:"required,max=120,email"`
	Telephone string `validate:"required,max=120,phone"`
	Pesel     string `validate:"required,min=5,max=120"`
}
