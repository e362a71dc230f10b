package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultPageLimit = 10
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageInvalidPagination    = "invalid pagination parameters"
	MessageInvalidID            = "invalid id parameter"

	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrTokenNotFound     = errors.New("failed to token not found")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrInvalidPagination = errors.New("limit must be between 1 and the configured maximum, offset must not be negative")
	ErrInvalidID         = errors.New("id must be a positive integer")
)

// Pagination is limit/offset paging. Zero values fall back to the defaults.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

var ErrInvalidImage = errors.New("invalid image: expected a jpeg or png up to 10MB")
