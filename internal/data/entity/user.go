package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleEmployee UserRole = "employee"
)

type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	AccountNumber *string  `db:"account_number"`
	Role          UserRole `db:"role"`
}
