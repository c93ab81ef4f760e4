package dto

import "time"

// SignupRequest alta de una cuenta SaaS nueva: tenant, primera empresa y
// primer usuario administrador en una sola llamada.
type SignupRequest struct {
	TenantName  string `json:"tenant_name"`
	Plan        string `json:"plan"` // basico, profesional, empresarial (defecto: basico)
	CompanyName string `json:"company_name"`
	NIT         string `json:"nit"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
}

// SignupResponse resultado del alta: la cuenta creada y un token listo.
type SignupResponse struct {
	Tenant  TenantResponse  `json:"tenant"`
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
}

// RegisterRequest alta de usuario dentro de una empresa existente.
type RegisterRequest struct {
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Role      string `json:"role"` // admin, supervisor, operador (defecto: operador)
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
