package usecase

import (
	"context"
	"errors"

	"studytrack/model"
	"studytrack/services"
	"studytrack/utils"

	"github.com/google/uuid"
)

var ErrUsernameTaken = errors.New("username already exists")

type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserService struct {
	UsersRepo UserStore
	Clock     utils.Clock
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{UsersRepo: repo, Clock: utils.RealClock{}}
}

// CreateUser registers a new account. The password is hashed before storage;
// the plain text never leaves this call.
func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := svc.UsersRepo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	user.UserID = uuid.New().String()
	user.CreatedAt = svc.Clock.Now()

	return svc.UsersRepo.AddUser(ctx, user)
}

func (svc *UserService) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(ctx, username)
}
