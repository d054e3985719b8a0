package entity

// Account ist die vom Credential-Verifier aufgelöste Identität. Sie wird hier nie gespeichert.
type Account struct {
	ID       string      `json:"employee_id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     AccountRole `json:"role"`
}

type AccountRole string

const (
	RoleUser     AccountRole = "user"
	RoleAdmin    AccountRole = "admin"
	RoleEmployee AccountRole = "employee"
)

func (r AccountRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}
