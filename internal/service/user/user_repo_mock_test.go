package user

import (
	"context"
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	DeleteFunc  func(ctx context.Context, id domain.ID) error
	GetByIDFunc func(ctx context.Context, id domain.ID) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id domain.ID, upd domain.UserUpdate) (*domain.User, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  domain.ID
		}
		GetByID []struct {
			Ctx context.Context
			ID  domain.ID
		}
		Update []struct {
			Ctx context.Context
			ID  domain.ID
			Upd domain.UserUpdate
		}
	}
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *userRepoMock) Delete(ctx context.Context, id domain.ID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id domain.ID, upd domain.UserUpdate) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
		Upd domain.UserUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  domain.ID
	Upd domain.UserUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
