package account

import (
	"expresso/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	return &entities.Account{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         entities.AccountRoleType(a.Role),
		Active:       a.Active,
		CreatedAt:    a.CreatedAt,
	}
}

func FromDomainModify(accountModify *entities.AccountModify) *AccountModifyDB {
	if accountModify == nil {
		return nil
	}
	accountDB := &AccountModifyDB{}

	if accountModify.ID != nil {
		accountDB.ID = accountModify.ID
	}
	if accountModify.Username != nil {
		accountDB.Username = accountModify.Username
	}
	if accountModify.PasswordHash != nil {
		accountDB.PasswordHash = accountModify.PasswordHash
	}
	if accountModify.Role != nil {
		role := accountModify.Role.String()
		accountDB.Role = &role
	}
	if accountModify.Active != nil {
		accountDB.Active = accountModify.Active
	}

	return accountDB
}
