package sale

import "clarityflow/internal/domain"

type Sale struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Value       float64           `json:"value"`
	Status      domain.SaleStatus `json:"status"`
	ClientName  string            `json:"clientName,omitempty"`
	CompanyID   string            `json:"companyId"`
}

const StorageKey = "clarityflow-sales"
