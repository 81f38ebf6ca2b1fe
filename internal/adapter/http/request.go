package httpadapter

import (
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/resilience"
)

type planRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

type contactRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=40"`
}

type sendRequest struct {
	Contact contactRequest   `json:"contact" validate:"required"`
	Draft   domain.PlanDraft `json:"draft"`
}

type sendResponse struct {
	Success      bool                  `json:"success"`
	EmailResults domain.DeliveryResult `json:"emailResults"`
}

type healthResponse struct {
	Status    string                      `json:"status"`
	Providers []resilience.ProviderHealth `json:"providers"`
}
