package user

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/internal/utils"
	"Culinary-Alchemy/internal/utils/mailing"
	"Culinary-Alchemy/internal/utils/storage"
	"Culinary-Alchemy/pkg/catalog"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const avatarFolder = "avatars"

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserProfile, error)
		UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) (domain.UserProfile, error)
		DeleteUser(ctx context.Context, id uint) error
		GetUserByID(ctx context.Context, id uint) (domain.UserProfile, error)
		GetUserByEmail(ctx context.Context, email string) (domain.UserProfile, error)
		GetUserByUsername(ctx context.Context, username string) (domain.UserProfile, error)
		GetUsers(ctx context.Context, page domain.Pagination) (domain.UserListResponse, error)
	}

	userService struct {
		userRepository    UserRepository
		catalogRepository catalog.CatalogRepository
		s3                storage.AwsS3
		mailer            mailing.Mailer
		appURL            string
		now               func() time.Time
	}
)

func NewUserService(
	userRepository UserRepository,
	catalogRepository catalog.CatalogRepository,
	s3 storage.AwsS3,
	mailer mailing.Mailer,
) UserService {
	return &userService{
		userRepository:    userRepository,
		catalogRepository: catalogRepository,
		s3:                s3,
		mailer:            mailer,
		appURL:            utils.GetConfig("APP_URL"),
		now:               time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserProfile, error) {
	if err := s.checkDietaries(ctx, req.DietaryPreferences); err != nil {
		return domain.UserProfile{}, err
	}

	roleName := req.Role
	if roleName == "" {
		roleName = domain.RoleUser
	}
	role, err := s.userRepository.GetRoleByName(ctx, roleName)
	if err != nil {
		return domain.UserProfile{}, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserProfile{}, err
	}

	user := &entities.User{
		Username:           req.Username,
		Email:              req.Email,
		Password:           hashed,
		Name:               req.Name,
		DietaryPreferences: req.DietaryPreferences,
		RoleID:             &role.ID,
		Role:               role,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	log.Infow("user created", "user_id", user.ID, "role", role.Name)
	return ToUserProfile(user), nil
}

// UpdateUser applies the non-nil fields of req to an active user.
func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) (domain.UserProfile, error) {
	user, err := s.userRepository.GetActiveUserByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if req.DietaryPreferences != nil {
		if err := s.checkDietaries(ctx, req.DietaryPreferences); err != nil {
			return domain.UserProfile{}, err
		}
		user.DietaryPreferences = req.DietaryPreferences
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Description != nil {
		user.Description = *req.Description
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return domain.UserProfile{}, err
		}
		user.Password = hashed
	}

	switch {
	case req.AvatarFile != nil:
		uploaded, err := s.s3.UploadImage(ctx, req.AvatarFile, avatarFolder)
		if err != nil {
			return domain.UserProfile{}, err
		}
		user.Avatar = &uploaded.DefaultURL
	case req.Avatar != nil:
		user.Avatar = req.Avatar
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	log.Infow("user updated", "user_id", user.ID)
	return ToUserProfile(user), nil
}

// DeleteUser soft deletes the user once. The account notice is best effort and never fails
// the deletion.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return utils.StoreError(domain.EntityUser, err)
	}
	if user.IsDeleted {
		return &domain.AlreadyDeletedError{Entity: domain.EntityUser, ID: id}
	}

	deleted, err := s.userRepository.MarkUserDeleted(ctx, id, s.now())
	if err != nil {
		return utils.StoreError(domain.EntityUser, err)
	}
	if !deleted {
		return &domain.AlreadyDeletedError{Entity: domain.EntityUser, ID: id}
	}

	log.Infow("user deleted", "user_id", id)
	s.notifyDeleted(user)
	return nil
}

func (s *userService) notifyDeleted(user *entities.User) {
	if s.mailer == nil {
		return
	}
	body := mailing.AccountDeletedBody(user.Username, s.appURL)
	if err := s.mailer.SendMail(user.Email, "Your Culinary Alchemy account was deleted", body); err != nil {
		log.Warnw("account deletion notice not sent", "user_id", user.ID, "error", err)
	}
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.UserProfile, error) {
	user, err := s.userRepository.GetActiveUserByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return ToUserProfile(user), nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetActiveUserByEmail(ctx, email)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return ToUserProfile(user), nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetActiveUserByUsername(ctx, username)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return ToUserProfile(user), nil
}

func (s *userService) GetUsers(ctx context.Context, page domain.Pagination) (domain.UserListResponse, error) {
	page = page.Normalize()

	users, total, err := s.userRepository.GetActiveUsers(ctx, page.Limit, page.Offset)
	if err != nil {
		return domain.UserListResponse{}, err
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, ToUserProfile(&users[i]))
	}

	return domain.UserListResponse{
		Users:      profiles,
		Total:      total,
		Pagination: page,
	}, nil
}

func (s *userService) checkDietaries(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := s.catalogRepository.MissingDietaryIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &domain.ReferentialIntegrityError{Entity: domain.EntityDietary, IDs: missing}
	}
	return nil
}

func ToUserProfile(user *entities.User) domain.UserProfile {
	profile := domain.UserProfile{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Name:               user.Name,
		Description:        user.Description,
		Location:           user.Location,
		DietaryPreferences: user.DietaryPreferences,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
	if user.Avatar != nil {
		profile.Avatar = *user.Avatar
	}
	if user.Role != nil {
		profile.Role = user.Role.Name
	}
	return profile
}
