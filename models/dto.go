package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Mobile   string `json:"mobile" form:"mobile" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthResponse is the wire contract shared with the storefront client: user and
// token ride at the top level next to success/message.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type CreateProductRequest struct {
	Title       string   `json:"title" form:"title" binding:"required"`
	Description string   `json:"description" form:"description" binding:"required"`
	Price       float64  `json:"price" form:"price" binding:"required,gt=0"`
	Image       string   `json:"image" form:"image"`
	Category    string   `json:"category" form:"category" binding:"required"`
	SKU         string   `json:"sku" form:"sku"`
	KeyBenefits []string `json:"key_benefits" form:"key_benefits"`
	Tags        []string `json:"tags" form:"tags"`
	IsActive    bool     `json:"is_active" form:"is_active"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Price       float64  `json:"price" form:"price"`
	Image       string   `json:"image" form:"image"`
	Category    string   `json:"category" form:"category"`
	SKU         string   `json:"sku" form:"sku"`
	KeyBenefits []string `json:"key_benefits" form:"key_benefits"`
	Tags        []string `json:"tags" form:"tags"`
	IsActive    *bool    `json:"is_active" form:"is_active"`
}

type CheckoutRequest struct {
	Items         []CartLine `json:"items" binding:"required,min=1"`
	Address       Address    `json:"address" binding:"required"`
	PaymentMethod string     `json:"payment_method"`
	TaxType       string     `json:"tax_type"`
	Notes         string     `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

type AdminCreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Mobile   string `json:"mobile" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
