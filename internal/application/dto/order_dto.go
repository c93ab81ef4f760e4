package dto

import "time"

// CreateOrderRequest creación de orden de servicio. Si TechnicianID viene,
// se usa tal cual; si no, el motor de asignación intenta elegir uno.
type CreateOrderRequest struct {
	ClientID     string     `json:"client_id"`
	AddressID    *string    `json:"address_id,omitempty"`
	TechnicianID *string    `json:"technician_id,omitempty"`
	ServiceType  string     `json:"service_type"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Notes        string     `json:"notes"`
}

// UpdateOrderRequest actualización parcial de una orden.
type UpdateOrderRequest struct {
	AddressID    *string    `json:"address_id,omitempty"`
	TechnicianID *string    `json:"technician_id,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// ChangeOrderStatusRequest cambio de estado de una orden.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse orden para respuestas HTTP.
type OrderResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	ClientID      string     `json:"client_id"`
	AddressID     *string    `json:"address_id,omitempty"`
	TechnicianID  *string    `json:"technician_id,omitempty"`
	ServiceTypeID string     `json:"service_type_id"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}
