package rest

import (
	"context"
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	DeleteFunc  func(ctx context.Context, id domain.ID) error
	GetByIDFunc func(ctx context.Context, id domain.ID) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id domain.ID, input user.UpdateInput) (*domain.User, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			Id  domain.ID
		}
		GetByID []struct {
			Ctx context.Context
			Id  domain.ID
		}
		Update []struct {
			Ctx   context.Context
			Id    domain.ID
			Input user.UpdateInput
		}
	}
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *userServiceMock) Delete(ctx context.Context, id domain.ID) error {
	if mock.DeleteFunc == nil {
		panic("userServiceMock.DeleteFunc: method is nil but userService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  domain.ID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  domain.ID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userServiceMock) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userServiceMock.GetByIDFunc: method is nil but userService.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  domain.ID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  domain.ID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userServiceMock) Update(ctx context.Context, id domain.ID, input user.UpdateInput) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userServiceMock.UpdateFunc: method is nil but userService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    domain.ID
		Input user.UpdateInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *userServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    domain.ID
	Input user.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
