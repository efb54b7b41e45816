package service

import (
	"errors"

	"campusconnect/internal/model"
	"campusconnect/internal/pkg"
	"campusconnect/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users *mysql.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: mysql.NewUserRepository(db)}
}

// Signup creates the identity and issues its first token. The email
// uniqueness race is resolved by the store's unique index; the loser gets
// ErrEmailTaken, never a second row.
func (s *AuthService) Signup(email, password, name string) (*model.User, string, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     model.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := pkg.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := pkg.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(userID uint64) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
