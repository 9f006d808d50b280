package domain

import "errors"

var (
	ErrMissingToken     = errors.New("admin token is not set, check PACHCA_ADMIN_TOKEN or the .env file")
	ErrUserNotFound     = errors.New("user not found")
	ErrTagExists        = errors.New("tag already exists")
	ErrUnexpectedStatus = errors.New("unexpected api response status")
	ErrNoUsers          = errors.New("no users fetched")
)
