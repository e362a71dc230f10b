package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetUser    = "success get user"
	MessageSuccessGetUsers   = "success get users"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"

	MessageFailedGetUser    = "failed to get user"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"
	MessageNoParamsProvided = "no params provided"
)

type (
	CreateUserRequest struct {
		Username           string `json:"username" validate:"required,min=3,max=50"`
		Email              string `json:"email" validate:"required,email"`
		Password           string `json:"password" validate:"required,min=12"`
		Name               string `json:"name"`
		Role               string `json:"role"`
		DietaryPreferences []uint `json:"dietary_preferences"`
	}

	// UpdateUserRequest carries a partial profile update; nil fields are left untouched.
	UpdateUserRequest struct {
		Username           *string               `json:"username" form:"username" validate:"omitempty,min=3,max=50"`
		Name               *string               `json:"name" form:"name" validate:"omitempty,min=1"`
		Email              *string               `json:"email" form:"email" validate:"omitempty,email"`
		Password           *string               `json:"password" form:"password" validate:"omitempty,min=12"`
		Location           *string               `json:"location" form:"location" validate:"omitempty,min=1"`
		Description        *string               `json:"description" form:"description" validate:"omitempty,min=1"`
		DietaryPreferences []uint                `json:"dietary_preferences" form:"dietary_preferences" validate:"omitempty,dive,min=1"`
		Avatar             *string               `json:"-" form:"-"`
		AvatarFile         *multipart.FileHeader `json:"-" form:"-"`
	}

	GetUserByEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserProfile struct {
		ID                 uint      `json:"id"`
		Username           string    `json:"username"`
		Email              string    `json:"email"`
		Avatar             string    `json:"avatar,omitempty"`
		Name               string    `json:"name"`
		Description        string    `json:"description"`
		Location           string    `json:"location"`
		DietaryPreferences []uint    `json:"dietary_preferences"`
		Role               string    `json:"role,omitempty"`
		CreatedAt          time.Time `json:"created_at"`
		UpdatedAt          time.Time `json:"updated_at"`
	}

	UserListResponse struct {
		Users      []UserProfile `json:"users"`
		Total      int64         `json:"total"`
		Pagination Pagination    `json:"pagination"`
	}
)

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Name == nil && r.Email == nil && r.Password == nil &&
		r.Location == nil && r.Description == nil && r.DietaryPreferences == nil &&
		r.Avatar == nil && r.AvatarFile == nil
}
