package rest

import (
	"context"
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/internal/service/form"
)

var _ formService = &formServiceMock{}

type formServiceMock struct {
	CreateFunc    func(ctx context.Context, input form.CreateInput) (*domain.Form, error)
	ExportFunc    func(ctx context.Context, publicID string, input form.ExportInput) (*form.Export, error)
	GetFunc       func(ctx context.Context, publicID string) (*domain.Form, error)
	ListFunc      func(ctx context.Context) ([]domain.Form, error)
	ResponsesFunc func(ctx context.Context, publicID string) ([]domain.Response, error)
	SubmitFunc    func(ctx context.Context, publicID string, input form.SubmitInput) error
	SummaryFunc   func(ctx context.Context, publicID string) (*form.Summary, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input form.CreateInput
		}
		Export []struct {
			Ctx      context.Context
			PublicID string
			Input    form.ExportInput
		}
		Get []struct {
			Ctx      context.Context
			PublicID string
		}
		List []struct {
			Ctx context.Context
		}
		Responses []struct {
			Ctx      context.Context
			PublicID string
		}
		Submit []struct {
			Ctx      context.Context
			PublicID string
			Input    form.SubmitInput
		}
		Summary []struct {
			Ctx      context.Context
			PublicID string
		}
	}
	lockCreate    sync.RWMutex
	lockExport    sync.RWMutex
	lockGet       sync.RWMutex
	lockList      sync.RWMutex
	lockResponses sync.RWMutex
	lockSubmit    sync.RWMutex
	lockSummary   sync.RWMutex
}

func (mock *formServiceMock) Create(ctx context.Context, input form.CreateInput) (*domain.Form, error) {
	if mock.CreateFunc == nil {
		panic("formServiceMock.CreateFunc: method is nil but formService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input form.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *formServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input form.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *formServiceMock) Export(ctx context.Context, publicID string, input form.ExportInput) (*form.Export, error) {
	if mock.ExportFunc == nil {
		panic("formServiceMock.ExportFunc: method is nil but formService.Export was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
		Input    form.ExportInput
	}{Ctx: ctx, PublicID: publicID, Input: input}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, publicID, input)
}

func (mock *formServiceMock) ExportCalls() []struct {
	Ctx      context.Context
	PublicID string
	Input    form.ExportInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *formServiceMock) Get(ctx context.Context, publicID string) (*domain.Form, error) {
	if mock.GetFunc == nil {
		panic("formServiceMock.GetFunc: method is nil but formService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, publicID)
}

func (mock *formServiceMock) GetCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *formServiceMock) List(ctx context.Context) ([]domain.Form, error) {
	if mock.ListFunc == nil {
		panic("formServiceMock.ListFunc: method is nil but formService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *formServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *formServiceMock) Responses(ctx context.Context, publicID string) ([]domain.Response, error) {
	if mock.ResponsesFunc == nil {
		panic("formServiceMock.ResponsesFunc: method is nil but formService.Responses was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockResponses.Lock()
	mock.calls.Responses = append(mock.calls.Responses, callInfo)
	mock.lockResponses.Unlock()
	return mock.ResponsesFunc(ctx, publicID)
}

func (mock *formServiceMock) ResponsesCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	mock.lockResponses.RLock()
	calls := mock.calls.Responses
	mock.lockResponses.RUnlock()
	return calls
}

func (mock *formServiceMock) Submit(ctx context.Context, publicID string, input form.SubmitInput) error {
	if mock.SubmitFunc == nil {
		panic("formServiceMock.SubmitFunc: method is nil but formService.Submit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
		Input    form.SubmitInput
	}{Ctx: ctx, PublicID: publicID, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, publicID, input)
}

func (mock *formServiceMock) SubmitCalls() []struct {
	Ctx      context.Context
	PublicID string
	Input    form.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *formServiceMock) Summary(ctx context.Context, publicID string) (*form.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("formServiceMock.SummaryFunc: method is nil but formService.Summary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, publicID)
}

func (mock *formServiceMock) SummaryCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
