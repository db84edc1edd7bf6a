package dto

type RegisterRequestDTO struct {
	Username          string `json:"username" example:"creator42"`
	Email             string `json:"email" example:"creator42@example.com"`
	Password          string `json:"password" example:"s3cret-pass"`
	OnlyFansAccountID string `json:"onlyfansAccountId" example:"acct_123"`
}

type UserDTO struct {
	ID                int    `json:"id" example:"1"`
	Username          string `json:"username" example:"creator42"`
	Email             string `json:"email" example:"creator42@example.com"`
	OnlyFansAccountID string `json:"onlyfans_account_id" example:"acct_123"`
}

type RegisterResponseDTO struct {
	Message string  `json:"message" example:"User registered successfully"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"creator42"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string  `json:"message" example:"User logged in successfully"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
