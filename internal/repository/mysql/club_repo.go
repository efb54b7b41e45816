package mysql

import (
	"campusconnect/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClubRepository struct {
	DB *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	if db == nil {
		db = DB
	}
	return &ClubRepository{DB: db}
}

// Create inserts the club and its creator's ADMIN membership in one
// transaction.
func (r *ClubRepository) Create(club *model.Club) (*model.Club, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(club).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.ClubMember{
			ClubID: club.ID,
			UserID: club.UserID,
			Role:   model.MemberRoleAdmin,
		}).Error
	})
	return club, err
}

func (r *ClubRepository) FindByID(id uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.First(&club, id).Error
	return &club, err
}

func (r *ClubRepository) List(status string) ([]model.Club, error) {
	var list []model.Club
	err := r.DB.Where("status = ?", status).Order("id desc").Find(&list).Error
	return list, err
}

func (r *ClubRepository) UpdateFields(id uint64, fields map[string]any) (*model.Club, error) {
	if err := r.DB.Model(&model.Club{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ClubRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Club{}, id).Error
}

// Join relies on the unique (club_id, user_id) index rather than a
// check-then-insert; returns false when the membership already existed so
// the caller can fail the race loser closed.
func (r *ClubRepository) Join(clubID, userID uint64) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.ClubMember{ClubID: clubID, UserID: userID, Role: model.MemberRoleMember})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ClubRepository) IsMember(clubID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClubRepository) Members(clubID uint64) ([]model.ClubMember, error) {
	var rows []model.ClubMember
	err := r.DB.Where("club_id = ?", clubID).Find(&rows).Error
	return rows, err
}
