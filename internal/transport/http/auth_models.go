package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"incorrect username or password"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresAt   string `json:"expires_at" example:"2026-01-02T09:30:00Z"`
}

// RegisterRequest carries the fields needed to open an account.
type RegisterRequest struct {
	Username     string  `json:"username" example:"nightowls"`
	Password     string  `json:"password" example:"StrongPass!23"`
	TypeOfEntity string  `json:"type_of_entity" example:"band"`
	Name         string  `json:"name" example:"Maria"`
	Surname      string  `json:"surname" example:"Papadopoulou"`
	EmailAddress string  `json:"email_address" example:"maria@example.com"`
	PhoneNumber  string  `json:"phone_number" example:"+30 697 000 0000"`
	VatID        *string `json:"vat_id,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
}

// RegisterResponse returns the id of the created account.
type RegisterResponse struct {
	UserID int64 `json:"user_id" example:"42"`
}

// ChangePasswordRequest captures the payload for password updates.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" example:"OldPass!23"`
	NewPassword string `json:"new_password" example:"NewPass!45"`
}

// ForgotPasswordRequest captures the payload for requesting a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" example:"maria@example.com"`
}

// ResetPasswordRequest captures the payload for consuming a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" example:"2Z9kJ1kq..."`
	NewPassword string `json:"new_password" example:"NewPass!45"`
}
