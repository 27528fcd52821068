package entities

import "time"

type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         AccountRoleType
	Active       bool
	CreatedAt    time.Time
}

type AccountRoleType string

const (
	RoleOperator AccountRoleType = "operador"
	RoleAdmin    AccountRoleType = "admin"
)

const DefaultRoleType = RoleOperator

func (r AccountRoleType) String() string {
	return string(r)
}

type AccountModify struct {
	ID           *int64
	Username     *string
	PasswordHash *string
	Role         *AccountRoleType
	Active       *bool
}
