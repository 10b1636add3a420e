package form

import (
	"context"
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	AppendResponseFunc func(ctx context.Context, formID domain.ID, resp domain.Response) error
	CreateFunc         func(ctx context.Context, f domain.Form) (*domain.Form, error)
	GetByPublicIDFunc  func(ctx context.Context, publicID string) (*domain.Form, error)
	ListByOwnerFunc    func(ctx context.Context, ownerID domain.ID) ([]domain.Form, error)
	ListResponsesFunc  func(ctx context.Context, formID domain.ID) ([]domain.Response, error)
	LockByPublicIDFunc func(ctx context.Context, publicID string) (*domain.Form, error)

	calls struct {
		AppendResponse []struct {
			Ctx    context.Context
			FormID domain.ID
			Resp   domain.Response
		}
		Create []struct {
			Ctx context.Context
			F   domain.Form
		}
		GetByPublicID []struct {
			Ctx      context.Context
			PublicID string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID domain.ID
		}
		ListResponses []struct {
			Ctx    context.Context
			FormID domain.ID
		}
		LockByPublicID []struct {
			Ctx      context.Context
			PublicID string
		}
	}
	lockAppendResponse sync.RWMutex
	lockCreate         sync.RWMutex
	lockGetByPublicID  sync.RWMutex
	lockListByOwner    sync.RWMutex
	lockListResponses  sync.RWMutex
	lockLockByPublicID sync.RWMutex
}

func (mock *formRepoMock) AppendResponse(ctx context.Context, formID domain.ID, resp domain.Response) error {
	if mock.AppendResponseFunc == nil {
		panic("formRepoMock.AppendResponseFunc: method is nil but formRepo.AppendResponse was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID domain.ID
		Resp   domain.Response
	}{Ctx: ctx, FormID: formID, Resp: resp}
	mock.lockAppendResponse.Lock()
	mock.calls.AppendResponse = append(mock.calls.AppendResponse, callInfo)
	mock.lockAppendResponse.Unlock()
	return mock.AppendResponseFunc(ctx, formID, resp)
}

func (mock *formRepoMock) AppendResponseCalls() []struct {
	Ctx    context.Context
	FormID domain.ID
	Resp   domain.Response
} {
	mock.lockAppendResponse.RLock()
	calls := mock.calls.AppendResponse
	mock.lockAppendResponse.RUnlock()
	return calls
}

func (mock *formRepoMock) Create(ctx context.Context, f domain.Form) (*domain.Form, error) {
	if mock.CreateFunc == nil {
		panic("formRepoMock.CreateFunc: method is nil but formRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Form
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *formRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   domain.Form
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *formRepoMock) GetByPublicID(ctx context.Context, publicID string) (*domain.Form, error) {
	if mock.GetByPublicIDFunc == nil {
		panic("formRepoMock.GetByPublicIDFunc: method is nil but formRepo.GetByPublicID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockGetByPublicID.Lock()
	mock.calls.GetByPublicID = append(mock.calls.GetByPublicID, callInfo)
	mock.lockGetByPublicID.Unlock()
	return mock.GetByPublicIDFunc(ctx, publicID)
}

func (mock *formRepoMock) GetByPublicIDCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	mock.lockGetByPublicID.RLock()
	calls := mock.calls.GetByPublicID
	mock.lockGetByPublicID.RUnlock()
	return calls
}

func (mock *formRepoMock) ListByOwner(ctx context.Context, ownerID domain.ID) ([]domain.Form, error) {
	if mock.ListByOwnerFunc == nil {
		panic("formRepoMock.ListByOwnerFunc: method is nil but formRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID domain.ID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *formRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID domain.ID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *formRepoMock) ListResponses(ctx context.Context, formID domain.ID) ([]domain.Response, error) {
	if mock.ListResponsesFunc == nil {
		panic("formRepoMock.ListResponsesFunc: method is nil but formRepo.ListResponses was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID domain.ID
	}{Ctx: ctx, FormID: formID}
	mock.lockListResponses.Lock()
	mock.calls.ListResponses = append(mock.calls.ListResponses, callInfo)
	mock.lockListResponses.Unlock()
	return mock.ListResponsesFunc(ctx, formID)
}

func (mock *formRepoMock) ListResponsesCalls() []struct {
	Ctx    context.Context
	FormID domain.ID
} {
	mock.lockListResponses.RLock()
	calls := mock.calls.ListResponses
	mock.lockListResponses.RUnlock()
	return calls
}

func (mock *formRepoMock) LockByPublicID(ctx context.Context, publicID string) (*domain.Form, error) {
	if mock.LockByPublicIDFunc == nil {
		panic("formRepoMock.LockByPublicIDFunc: method is nil but formRepo.LockByPublicID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockLockByPublicID.Lock()
	mock.calls.LockByPublicID = append(mock.calls.LockByPublicID, callInfo)
	mock.lockLockByPublicID.Unlock()
	return mock.LockByPublicIDFunc(ctx, publicID)
}

func (mock *formRepoMock) LockByPublicIDCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	mock.lockLockByPublicID.RLock()
	calls := mock.calls.LockByPublicID
	mock.lockLockByPublicID.RUnlock()
	return calls
}
