package memory

import (
	"context"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
)

type userRepository struct {
	db  *table[models.User]
	src *DB
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository(db *DB) repositories.IUserRepository {
	return &userRepository{db: db.users, src: db}
}

func (repo *userRepository) Create(_ context.Context, user *models.User) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, r := range repo.db.rows {
		if r.val.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}

	user.PrepareForInsert(repo.src.now())
	repo.db.insert(user.ID, *user)
	return nil
}

func (repo *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		u := r.val
		return &u, nil
	}
	return nil, repositories.ErrNotFound
}

func (repo *userRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, r := range repo.db.rows {
		if r.val.Username == username {
			u := r.val
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}
