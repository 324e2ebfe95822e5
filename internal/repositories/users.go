package repositories

import (
	"context"

	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Save inserts the user and returns the identified copy. A duplicate email
// comes back as (nil, nil): the unique index rejected the insert, which is a
// normal outcome for the registration flow, not a fault. Anything else the
// database reports is a fault and propagates.
func (repo *Users) Save(ctx context.Context, user entities.User) (*entities.User, error) {
	user.ID = 0
	err := repo.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to save user")
	}
	return &user, nil
}

func (repo *Users) FindByEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error) {
	var user entities.User
	err := repo.db.WithContext(ctx).
		First(&user, "email = ? AND password = ?", email, password).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find user")
	}
	return &user, nil
}

func (repo *Users) FindAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := repo.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (repo *Users) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.User{}, "email = ?", email)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "failed to delete user")
	}
	return res.RowsAffected > 0, nil
}
