package dto

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" example:"admin@campusboard.edu"`
	Password string `json:"password" example:"admin123"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn" example:"3600"`
}
