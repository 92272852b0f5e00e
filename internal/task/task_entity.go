package task

import "clarityflow/internal/domain"

// Task disimpan sebagai satu koleksi JSON per deployment di bawah StorageKey;
// semua read difilter per company.
type Task struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     string            `json:"dueDate"` // tanggal kalender, format 2006-01-02
	AssigneeID  string            `json:"assigneeId"`
	Department  domain.Department `json:"department"`
	CompanyID   string            `json:"companyId"`
}

const StorageKey = "clarityflow-tasks"
