package dto

// LoginForm is posted by the login page.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SignupForm is posted by the signup page.
type SignupForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// Values echoes the form back without the password.
func (f SignupForm) Values() map[string]string {
	return map[string]string{"username": f.Username, "email": f.Email, "role": f.Role}
}

// ProductForm is posted by the supplier's registration page. Price stays a
// string so an unparsable value can be shown back to the user.
type ProductForm struct {
	ProductName string `form:"product_name"`
	Category    string `form:"category"`
	Price       string `form:"price"`
	Ingredients string `form:"ingredients"`
}

// Values echoes the form back.
func (f ProductForm) Values() map[string]string {
	return map[string]string{
		"product_name": f.ProductName,
		"category":     f.Category,
		"price":        f.Price,
		"ingredients":  f.Ingredients,
	}
}

// CartForm adds or removes one product.
type CartForm struct {
	ProductID int64 `form:"product_id"`
}

// CheckoutForm carries the delivery contact.
type CheckoutForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
}

// Values echoes the form back.
func (f CheckoutForm) Values() map[string]string {
	return map[string]string{"name": f.Name, "email": f.Email, "phone": f.Phone, "address": f.Address}
}

// VerifyForm asks for a product authenticity check.
type VerifyForm struct {
	ProductID string `form:"product_id"`
}

// AdvanceForm carries the status the logistics user saw.
type AdvanceForm struct {
	Status string `form:"status"`
}
