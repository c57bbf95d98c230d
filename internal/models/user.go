package models

// User roles understood by the console.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User is a console account. There is no authentication layer; users exist
// so the console can attribute configuration changes and scope the UI.
type User struct {
	BaseModel

	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"not null;uniqueIndex" json:"email"`
	Role   string `gorm:"not null;default:viewer" json:"role"`
	Status string `gorm:"not null;default:active" json:"status"`
}
