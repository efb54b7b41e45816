package service

import (
	"errors"
	"strings"

	"campusconnect/internal/model"
	"campusconnect/internal/repository/mysql"

	"gorm.io/gorm"
)

type UserService struct {
	users *mysql.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: mysql.NewUserRepository(db)}
}

type UserUpdate struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
	Role *string `json:"role"`
}

func (s *UserService) List() ([]model.User, error) {
	return s.users.List()
}

func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies the shared ownership predicate; the role field is
// additionally restricted to admins.
func (s *UserService) Update(actorID uint64, actorRole string, id uint64, upd UserUpdate) (*model.User, error) {
	if !CanMutate(actorID, actorRole, id) {
		return nil, ErrForbidden
	}
	if upd.Role != nil && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.Role != nil {
		fields["role"] = *upd.Role
	}
	if len(fields) == 0 {
		return s.Get(id)
	}
	return s.applyUpdate(id, fields)
}

func (s *UserService) UpdateAvatar(actorID uint64, actorRole string, id uint64, avatar string) (*model.User, error) {
	if !CanMutate(actorID, actorRole, id) {
		return nil, ErrForbidden
	}
	if avatar == "" || !strings.HasPrefix(avatar, "data:image/") {
		return nil, ErrInvalidAvatar
	}
	return s.applyUpdate(id, map[string]any{"avatar": avatar})
}

// applyUpdate translates the missing-row case: an UPDATE against an id the
// store has never held affects zero rows without erroring, so the re-read
// after it is where the absence surfaces.
func (s *UserService) applyUpdate(id uint64, fields map[string]any) (*model.User, error) {
	user, err := s.users.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}
