// Package service implements the business logic layer of the application.
package service

import (
	"context"
	"time"

	"amity/internal/cache"
	"amity/internal/models"
	"amity/internal/observability"
	"amity/internal/repository"

	"github.com/google/uuid"
)

// RegisterUserInput carries the fields accepted at registration.
type RegisterUserInput struct {
	UID         string `json:"uid"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
	Gender      string `json:"gender"`
	Status      string `json:"status"`
	DateOfBirth string `json:"date_of_birth"`
}

// UpdateUserInput carries a partial profile update. Only non-nil fields
// overwrite the stored values.
type UpdateUserInput struct {
	UID         *string `json:"uid"`
	Nickname    *string `json:"nickname"`
	Email       *string `json:"email"`
	AvatarURL   *string `json:"avatar_url"`
	Gender      *string `json:"gender"`
	Status      *string `json:"status"`
	DateOfBirth *string `json:"date_of_birth"`
}

const dateLayout = "2006-01-02"

// UserService provides profile CRUD and the existence guard consumed by
// the relationship services.
type UserService struct {
	userRepo      repository.UserRepository
	defaultAvatar string
	log           *observability.RelationLogger
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, defaultAvatar string) *UserService {
	return &UserService{
		userRepo:      userRepo,
		defaultAvatar: defaultAvatar,
		log:           observability.NewRelationLogger("user"),
	}
}

// Register creates a new profile after validating field formats and
// uid/email uniqueness.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*models.UserDTO, error) {
	if input.UID == "" || len(input.UID) > 10 {
		return nil, models.NewValidationError("uid is required and must be at most 10 characters")
	}
	if input.Nickname == "" || len(input.Nickname) > 50 {
		return nil, models.NewValidationError("nickname is required and must be at most 50 characters")
	}
	if input.Email == "" {
		return nil, models.NewValidationError("email is required")
	}
	if !models.ValidGender(models.Gender(input.Gender)) {
		return nil, models.NewValidationError("gender must be 'male' or 'female'")
	}

	status := models.UserStatusOnline
	if input.Status != "" {
		if !models.ValidUserStatus(models.UserStatus(input.Status)) {
			return nil, models.NewValidationError("unknown user status")
		}
		status = models.UserStatus(input.Status)
	}

	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return nil, models.NewValidationError("date_of_birth must be formatted as YYYY-MM-DD")
	}
	if dob.After(time.Now()) {
		return nil, models.NewValidationError("date_of_birth cannot be in the future")
	}

	if taken, err := s.userRepo.ExistsWithUID(ctx, input.UID, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, models.NewConflictError("uid is already taken")
	}
	if taken, err := s.userRepo.ExistsWithEmail(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, models.NewConflictError("email is already registered")
	}

	avatar := input.AvatarURL
	if avatar == "" {
		avatar = s.defaultAvatar
	}

	user := &models.User{
		UID:         input.UID,
		Nickname:    input.Nickname,
		Email:       input.Email,
		AvatarURL:   avatar,
		Gender:      models.Gender(input.Gender),
		Status:      status,
		DateOfBirth: dob,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "register", "user registered", "user_id", user.ID, "uid", user.UID)
	dto := models.NewUserDTO(user)
	return &dto, nil
}

// Update applies a partial profile update. Only fields present in the
// input are written; uid/email uniqueness is re-checked excluding self.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*models.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UID != nil {
		if *input.UID == "" || len(*input.UID) > 10 {
			return nil, models.NewValidationError("uid must be at most 10 characters and non-empty")
		}
		if taken, err := s.userRepo.ExistsWithUID(ctx, *input.UID, id); err != nil {
			return nil, err
		} else if taken {
			return nil, models.NewConflictError("uid is already taken")
		}
		user.UID = *input.UID
	}
	if input.Nickname != nil {
		if *input.Nickname == "" || len(*input.Nickname) > 50 {
			return nil, models.NewValidationError("nickname must be at most 50 characters and non-empty")
		}
		user.Nickname = *input.Nickname
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, models.NewValidationError("email cannot be empty")
		}
		if taken, err := s.userRepo.ExistsWithEmail(ctx, *input.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, models.NewConflictError("email is already registered")
		}
		user.Email = *input.Email
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Gender != nil {
		if !models.ValidGender(models.Gender(*input.Gender)) {
			return nil, models.NewValidationError("gender must be 'male' or 'female'")
		}
		user.Gender = models.Gender(*input.Gender)
	}
	if input.Status != nil {
		if !models.ValidUserStatus(models.UserStatus(*input.Status)) {
			return nil, models.NewValidationError("unknown user status")
		}
		user.Status = models.UserStatus(*input.Status)
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *input.DateOfBirth)
		if err != nil {
			return nil, models.NewValidationError("date_of_birth must be formatted as YYYY-MM-DD")
		}
		if dob.After(time.Now()) {
			return nil, models.NewValidationError("date_of_birth cannot be in the future")
		}
		user.DateOfBirth = dob
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, id)

	s.log.Info(ctx, "update", "user updated", "user_id", id)
	dto := models.NewUserDTO(user)
	return &dto, nil
}

// Delete removes the profile and, through the cascading foreign keys, every
// friendship and enmity row referencing it.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, id)
	s.log.Info(ctx, "delete", "user deleted", "user_id", id)
	return nil
}

// Get returns the full profile projection.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDTO, error) {
	if dto, ok := cache.GetUserDTO(ctx, id); ok {
		return &dto, nil
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := models.NewUserDTO(user)
	cache.SetUserDTO(ctx, id, dto)
	return &dto, nil
}

// GetShort returns the abbreviated profile projection.
func (s *UserService) GetShort(ctx context.Context, id uuid.UUID) (*models.ShortUserDTO, error) {
	if dto, ok := cache.GetShortUserDTO(ctx, id); ok {
		return &dto, nil
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := models.NewShortUserDTO(user)
	cache.SetShortUserDTO(ctx, id, dto)
	return &dto, nil
}

// GetByUID returns the full projection for the user holding the public handle.
func (s *UserService) GetByUID(ctx context.Context, uid string) (*models.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	dto := models.NewUserDTO(user)
	return &dto, nil
}

// SearchByNickname returns a page of short projections whose nickname
// starts with the given prefix.
func (s *UserService) SearchByNickname(ctx context.Context, nickname string, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	var empty models.Paged[models.ShortUserDTO]
	if err := models.ValidatePagination(offset, limit); err != nil {
		return empty, err
	}

	users, total, err := s.userRepo.SearchByNickname(ctx, nickname, offset, limit)
	if err != nil {
		return empty, err
	}
	return models.NewPaged(models.ShortUserDTOs(users), offset, limit, total), nil
}

// ListAll returns a page of full profile projections.
func (s *UserService) ListAll(ctx context.Context, offset, limit int) (models.Paged[models.UserDTO], error) {
	var empty models.Paged[models.UserDTO]
	if err := models.ValidatePagination(offset, limit); err != nil {
		return empty, err
	}

	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return empty, err
	}
	return models.NewPaged(models.UserDTOs(users), offset, limit, total), nil
}

// ListAllShort returns a page of abbreviated profile projections.
func (s *UserService) ListAllShort(ctx context.Context, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	var empty models.Paged[models.ShortUserDTO]
	if err := models.ValidatePagination(offset, limit); err != nil {
		return empty, err
	}

	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return empty, err
	}
	return models.NewPaged(models.ShortUserDTOs(users), offset, limit, total), nil
}
