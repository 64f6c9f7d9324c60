package repositories

import (
	"context"
	"time"

	"github.com/you/usersvc/domain"
	"gorm.io/gorm"
)

// EmailCodeRepositoryImpl implements domain.EmailCodeRepository using GORM
type EmailCodeRepositoryImpl struct {
	db *gorm.DB
}

// DBEmailCode represents the database model for EmailCode (with GORM tags)
type DBEmailCode struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"uniqueIndex;size:128"`
	UserID    uint      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBEmailCode) TableName() string {
	return "email_codes"
}

// NewEmailCodeRepository creates a new email code repository
func NewEmailCodeRepository(db *gorm.DB) domain.EmailCodeRepository {
	return &EmailCodeRepositoryImpl{db: db}
}

// Create implements domain.EmailCodeRepository
func (r *EmailCodeRepositoryImpl) Create(ctx context.Context, code *domain.EmailCode) error {
	dbCode := &DBEmailCode{
		Code:   code.Code,
		UserID: code.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbCode).Error; err != nil {
		return err
	}
	code.ID = dbCode.ID
	code.CreatedAt = dbCode.CreatedAt
	return nil
}

// Consume implements domain.EmailCodeRepository. Read and delete run in
// one transaction and the delete must affect exactly one row, so two
// concurrent redemptions of the same code cannot both succeed.
func (r *EmailCodeRepositoryImpl) Consume(ctx context.Context, code string) (*domain.EmailCode, error) {
	var dbCode DBEmailCode
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("code = ?", code).First(&dbCode).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domain.ErrCodeNotFound
			}
			return err
		}

		result := tx.Where("id = ?", dbCode.ID).Delete(&DBEmailCode{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCodeNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.EmailCode{
		ID:        dbCode.ID,
		Code:      dbCode.Code,
		UserID:    dbCode.UserID,
		CreatedAt: dbCode.CreatedAt,
	}, nil
}

// Delete implements domain.EmailCodeRepository
func (r *EmailCodeRepositoryImpl) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Where("code = ?", code).Delete(&DBEmailCode{}).Error
}
