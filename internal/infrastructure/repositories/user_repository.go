package repositories

import (
	"context"
	"time"

	"github.com/you/usersvc/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password"`
	FirstName    string    `gorm:"size:255"`
	LastName     string    `gorm:"size:255"`
	Country      string    `gorm:"size:255"`
	Image        string    `gorm:"size:512"`
	IsVerified   bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindAll implements domain.UserRepository
func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("id").Find(&dbUsers).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository. Only the mutable
// profile fields change; the updated row is read back and returned.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(map[string]any{
		"first_name": update.FirstName,
		"last_name":  update.LastName,
		"country":    update.Country,
		"image":      update.Image,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// MarkVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("is_verified", true).Error
}

// Delete implements domain.UserRepository. Deleting an absent row is
// not an error, matching the idempotent DELETE endpoint.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{}).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Country:      user.Country,
		Image:        user.Image,
		IsVerified:   user.IsVerified,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Country:      dbUser.Country,
		Image:        dbUser.Image,
		IsVerified:   dbUser.IsVerified,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
