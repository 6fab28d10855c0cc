package persistent

import (
	"context"
	"errors"
	"strings"

	"blogpress/internal/entity"
	"blogpress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	// GetByEmail includes the password hash.
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// GetByID never includes the password hash.
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if adminModel.ID == "" {
		adminModel.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(adminModel).Error; err != nil {
		if isUniqueViolation(err) {
			return entity.ErrDuplicateEmail
		}
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&adminModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	if !isUUID(id) {
		return nil, entity.ErrNotFound
	}

	var adminModel model.AdminModel
	if err := r.db.WithContext(ctx).
		Select("id", "name", "email", "created_at", "updated_at").
		Where("id = ?", id).
		First(&adminModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToAdminEntity(&adminModel), nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

// isUUID guards lookups by primary key: Postgres rejects malformed UUIDs with
// a query error, which callers should see as a missing record.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Drivers without error translation.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
