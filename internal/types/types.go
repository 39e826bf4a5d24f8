// Package types defines the shared domain types for ShopHub.
// JSON tags follow the FakeStore wire format exactly, so every struct here
// round-trips through the remote API unchanged.
package types

// Product is a catalog entry as served by the remote API.
// Products are immutable once fetched; a refetch replaces them wholesale.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the aggregate customer rating attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CartLine is one (product, quantity) pairing in the local shopping cart.
// Quantity is always >= 1; lines that would drop to zero are removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price x quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// RemoteCart is a server-side cart record. These are listed and edited by the
// admin views but never reconciled with the local shopping cart.
type RemoteCart struct {
	ID       int              `json:"id"`
	UserID   int              `json:"userId"`
	Date     string           `json:"date"`
	Products []RemoteCartItem `json:"products"`
}

// RemoteCartItem references a product inside a remote cart by ID only.
type RemoteCartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// User is a server-side user record.
type User struct {
	ID       int     `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
}

// Name holds a user's first and last name.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Address holds a user's postal address.
type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// Geolocation coordinates. The remote API serves these as strings.
type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Credentials are the username/password pair for the remote /auth/login
// endpoint. Not related to the local admin session.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the token returned by /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// AdminUser is the client-only admin session record. It gates the admin
// commands and is not a server-verified credential.
type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
