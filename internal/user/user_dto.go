package user

// Semua field profil opsional di data model; email dan avatar divalidasi
// formatnya kalau diisi.
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	AvatarURL  string `json:"avatarUrl" validate:"omitempty,url"`
	Role       string `json:"role" validate:"omitempty,oneof=Owner Manager Employee"`
	Department string `json:"department" validate:"omitempty,oneof=HR Marketing Engineering Admin Sales General"`
	CompanyID  string `json:"companyId" validate:"required"`
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Email      *string `json:"email" validate:"omitempty,email"`
	AvatarURL  *string `json:"avatarUrl" validate:"omitempty,url"`
	Role       *string `json:"role" validate:"omitempty,oneof=Owner Manager Employee"`
	Department *string `json:"department" validate:"omitempty,oneof=HR Marketing Engineering Admin Sales General"`
}

// UpdateProfileRequest dipakai actor untuk onboarding/profilnya sendiri.
type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	AvatarURL  *string `json:"avatarUrl" validate:"omitempty,url"`
	CompanyID  *string `json:"companyId"`
	Role       *string `json:"role" validate:"omitempty,oneof=Owner Manager Employee"`
	Department *string `json:"department" validate:"omitempty,oneof=HR Marketing Engineering Admin Sales General"`
}
