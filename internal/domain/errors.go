package domain

import "errors"

var (
	ErrDuplicateUser    = errors.New("username or email already exists")
	ErrDuplicateAccount = errors.New("onlyfans account already registered")
	ErrNotOwner         = errors.New("user does not own this onlyfans account")
)
