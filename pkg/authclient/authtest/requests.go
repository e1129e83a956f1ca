package authtest

type tenantCredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type tokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Login    string `json:"login" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Sub      string `json:"sub" validate:"required,notblank"`
	Scope    any    `json:"scope,omitempty"`
}

type loginUserRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required,notblank,max=128"`
}
