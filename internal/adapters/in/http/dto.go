package http

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	Company     string `json:"company" validate:"required"`
	ServiceType string `json:"service_type" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low normal high"`
	Description string `json:"description"`
	QuotationID string `json:"quotation_id" validate:"omitempty,uuid"`
}

// AssignTechnicianRequest is the payload for PUT /api/v1/orders/:id/technician.
type AssignTechnicianRequest struct {
	Technician string `json:"technician" validate:"required"`
}

// SetPhysicalOrderNumberRequest is the payload for
// PUT /api/v1/orders/:id/physical-number.
type SetPhysicalOrderNumberRequest struct {
	PhysicalOrderNumber string `json:"physical_order_number" validate:"required"`
}

// AddEvidenceRequest is the payload for POST /api/v1/orders/:id/evidence.
type AddEvidenceRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=document photo_before photo_after"`
	FileName string `json:"file_name" validate:"required"`
}

// CreateOrderResponse confirms a created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AdvanceOrderResponse reports the status an order landed on after a
// successful advance.
type AdvanceOrderResponse struct {
	Status string `json:"status"`
	Phase  string `json:"phase"`
}

// OrderSummaryResponse is one row of GET /api/v1/orders/active.
type OrderSummaryResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Company    string `json:"company"`
	Technician string `json:"technician,omitempty"`
	Status     string `json:"status"`
	Phase      string `json:"phase"`
}

// OrderDetailResponse is the body of GET /api/v1/orders/:id.
type OrderDetailResponse struct {
	ID                  string         `json:"id"`
	Number              string         `json:"number"`
	Company             string         `json:"company"`
	ServiceType         string         `json:"service_type"`
	Priority            string         `json:"priority,omitempty"`
	Description         string         `json:"description,omitempty"`
	Technician          string         `json:"technician,omitempty"`
	PhysicalOrderNumber string         `json:"physical_order_number,omitempty"`
	QuotationID         string         `json:"quotation_id,omitempty"`
	Status              string         `json:"status"`
	Phase               string         `json:"phase"`
	Version             int            `json:"version"`
	EvidenceCounts      map[string]int `json:"evidence_counts"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
