package handler

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=seeker company"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token      string `json:"token"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	HasProfile bool   `json:"has_profile"`
}

type registerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type forgotCheckRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type forgotCheckResponse struct {
	OK     bool   `json:"ok"`
	Exists bool   `json:"exists"`
	Role   string `json:"role,omitempty"`
}

type forgotResetRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type okResponse struct {
	Success bool `json:"success"`
}
