package types

// NewProduct is the payload for creating or fully replacing a product.
// The server assigns the ID.
type NewProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// ProductPatch is a partial product update. Nil fields are omitted from the
// request body and left untouched by the server.
type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// NewUser is the payload for creating or replacing a user.
type NewUser struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
}

// NewCart is the payload for creating or replacing a remote cart.
type NewCart struct {
	UserID   int              `json:"userId"`
	Date     string           `json:"date"`
	Products []RemoteCartItem `json:"products"`
}
