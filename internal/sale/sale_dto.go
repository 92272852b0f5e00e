package sale

type CreateSaleRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Value       *float64 `json:"value" validate:"required,gte=0"`
	Status      string   `json:"status" validate:"required,oneof=Pending Processing Finished Canceled"`
	ClientName  string   `json:"clientName"`
	CompanyID   string   `json:"companyId" validate:"required"`
}

type UpdateSaleRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Value       *float64 `json:"value" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=Pending Processing Finished Canceled"`
	ClientName  *string  `json:"clientName"`
}
