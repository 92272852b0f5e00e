package domain

// User adalah actor yang tercatat di roster perusahaan. Profil dibuat saat
// otentikasi pertama oleh identity provider eksternal; role dan department
// bisa kosong sampai onboarding selesai.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	AvatarURL  string     `json:"avatarUrl,omitempty"`
	CompanyID  string     `json:"companyId,omitempty"`
	Role       Role       `json:"role,omitempty"`
	Department Department `json:"department,omitempty"`
}
