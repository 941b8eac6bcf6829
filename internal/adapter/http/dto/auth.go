package dto

type RegisterRequest struct {
	Pin *string `json:"pin"`
}

type RegisterResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
	HasPin  bool   `json:"hasPin"`
}

type LoginRequest struct {
	Pin string `json:"pin"`
}

type LoginResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}
