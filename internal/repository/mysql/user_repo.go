package mysql

import (
	"campusconnect/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	if db == nil {
		db = DB
	}
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("id desc").Find(&users).Error
	return users, err
}

// RoleByID reads the authoritative role straight from the store. Guards
// call this instead of trusting anything already attached to the request.
func (r *UserRepository) RoleByID(id uint64) (string, error) {
	var user model.User
	err := r.DB.Select("id", "role").First(&user, id).Error
	return user.Role, err
}

// Provision inserts a USER-role row for a verified subject not yet known
// locally. OnConflict keyed by primary key makes concurrent first-requests
// safe: the race loser reads the winner's row.
func (r *UserRepository) Provision(id uint64, email string) (*model.User, error) {
	stub := &model.User{ID: id, Email: email, Name: email, Role: model.RoleUser}
	if err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(stub).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *UserRepository) UpdateFields(id uint64, fields map[string]any) (*model.User, error) {
	if err := r.DB.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *UserRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.User{}, id).Error
}
