package repository

import (
	"github.com/taskhive/task-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithPersonalWorkspace creates a user, their personal workspace, and
// the corresponding membership within a single transaction.
func (r *GormUserRepository) CreateWithPersonalWorkspace(user *models.User, workspace *models.Workspace, member *models.WorkspaceMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if err := tx.Create(workspace).Error; err != nil {
			return err
		}

		member.WorkspaceID = workspace.ID
		member.UserID = user.ID
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
