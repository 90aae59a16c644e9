package account

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, u *domain.User) (*domain.User, error)
	CreateProfileFunc func(ctx context.Context, p domain.Profile) error
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	UsernameTakenFunc func(ctx context.Context, username string, exceptID int64) (bool, error)
	EmailTakenFunc    func(ctx context.Context, email string, exceptID int64) (bool, error)
	UpdateFunc        func(ctx context.Context, id int64, username, email string) error
	SetAvatarFunc     func(ctx context.Context, userID int64, avatar *string) error

	calls struct {
		Create []struct {
			U *domain.User
		}
		CreateProfile []struct {
			P domain.Profile
		}
		UsernameTaken []struct {
			Username string
			ExceptID int64
		}
		Update []struct {
			ID       int64
			Username string
			Email    string
		}
		SetAvatar []struct {
			UserID int64
			Avatar *string
		}
	}
	lockCreate        sync.RWMutex
	lockCreateProfile sync.RWMutex
	lockUsernameTaken sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSetAvatar     sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ U *domain.User }{U: u})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ U *domain.User } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) CreateProfile(ctx context.Context, p domain.Profile) error {
	if mock.CreateProfileFunc == nil {
		panic("userRepoMock.CreateProfileFunc: method is nil but userRepo.CreateProfile was just called")
	}
	mock.lockCreateProfile.Lock()
	mock.calls.CreateProfile = append(mock.calls.CreateProfile, struct{ P domain.Profile }{P: p})
	mock.lockCreateProfile.Unlock()
	return mock.CreateProfileFunc(ctx, p)
}

func (mock *userRepoMock) CreateProfileCalls() []struct{ P domain.Profile } {
	mock.lockCreateProfile.RLock()
	defer mock.lockCreateProfile.RUnlock()
	return mock.calls.CreateProfile
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	if mock.UsernameTakenFunc == nil {
		panic("userRepoMock.UsernameTakenFunc: method is nil but userRepo.UsernameTaken was just called")
	}
	callInfo := struct {
		Username string
		ExceptID int64
	}{Username: username, ExceptID: exceptID}
	mock.lockUsernameTaken.Lock()
	mock.calls.UsernameTaken = append(mock.calls.UsernameTaken, callInfo)
	mock.lockUsernameTaken.Unlock()
	return mock.UsernameTakenFunc(ctx, username, exceptID)
}

func (mock *userRepoMock) UsernameTakenCalls() []struct {
	Username string
	ExceptID int64
} {
	mock.lockUsernameTaken.RLock()
	defer mock.lockUsernameTaken.RUnlock()
	return mock.calls.UsernameTaken
}

func (mock *userRepoMock) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	if mock.EmailTakenFunc == nil {
		panic("userRepoMock.EmailTakenFunc: method is nil but userRepo.EmailTaken was just called")
	}
	return mock.EmailTakenFunc(ctx, email, exceptID)
}

func (mock *userRepoMock) Update(ctx context.Context, id int64, username, email string) error {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		ID       int64
		Username string
		Email    string
	}{ID: id, Username: username, Email: email}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, username, email)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	ID       int64
	Username string
	Email    string
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *userRepoMock) SetAvatar(ctx context.Context, userID int64, avatar *string) error {
	if mock.SetAvatarFunc == nil {
		panic("userRepoMock.SetAvatarFunc: method is nil but userRepo.SetAvatar was just called")
	}
	callInfo := struct {
		UserID int64
		Avatar *string
	}{UserID: userID, Avatar: avatar}
	mock.lockSetAvatar.Lock()
	mock.calls.SetAvatar = append(mock.calls.SetAvatar, callInfo)
	mock.lockSetAvatar.Unlock()
	return mock.SetAvatarFunc(ctx, userID, avatar)
}

func (mock *userRepoMock) SetAvatarCalls() []struct {
	UserID int64
	Avatar *string
} {
	mock.lockSetAvatar.RLock()
	defer mock.lockSetAvatar.RUnlock()
	return mock.calls.SetAvatar
}

var _ avatarStore = &avatarStoreMock{}

type avatarStoreMock struct {
	SaveFunc   func(ctx context.Context, contentType string, r io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, ref string) error

	calls struct {
		Save []struct {
			ContentType string
		}
		Delete []struct {
			Ref string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *avatarStoreMock) Save(ctx context.Context, contentType string, r io.Reader) (string, error) {
	if mock.SaveFunc == nil {
		panic("avatarStoreMock.SaveFunc: method is nil but avatarStore.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{ ContentType string }{ContentType: contentType})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, contentType, r)
}

func (mock *avatarStoreMock) SaveCalls() []struct{ ContentType string } {
	mock.lockSave.RLock()
	defer mock.lockSave.RUnlock()
	return mock.calls.Save
}

func (mock *avatarStoreMock) Delete(ctx context.Context, ref string) error {
	if mock.DeleteFunc == nil {
		panic("avatarStoreMock.DeleteFunc: method is nil but avatarStore.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ Ref string }{Ref: ref})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ref)
}

func (mock *avatarStoreMock) DeleteCalls() []struct{ Ref string } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(userID int64, role string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID int64
			Role   string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(userID int64, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID int64
		Role   string
	}{UserID: userID, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	UserID int64
	Role   string
} {
	mock.lockGenerateAccessToken.RLock()
	defer mock.lockGenerateAccessToken.RUnlock()
	return mock.calls.GenerateAccessToken
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
