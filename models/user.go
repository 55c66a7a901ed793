package models

// UserRole defines the roles the backend assigns to accounts
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleChef     UserRole = "CHEF"
	RoleAdmin    UserRole = "ADMIN"
)

// User mirrors the backend's current-user payload
type User struct {
	ID        uint     `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	Phone     string   `json:"phone"`
	Avatar    string   `json:"avatar"`
}
