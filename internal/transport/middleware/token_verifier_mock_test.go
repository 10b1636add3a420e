package middleware

import (
	"context"
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyTokenFunc func(ctx context.Context, token string) (*domain.User, error)

	calls struct {
		VerifyToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockVerifyToken sync.RWMutex
}

func (mock *tokenVerifierMock) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	if mock.VerifyTokenFunc == nil {
		panic("tokenVerifierMock.VerifyTokenFunc: method is nil but tokenVerifier.VerifyToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockVerifyToken.Lock()
	mock.calls.VerifyToken = append(mock.calls.VerifyToken, callInfo)
	mock.lockVerifyToken.Unlock()
	return mock.VerifyTokenFunc(ctx, token)
}

func (mock *tokenVerifierMock) VerifyTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockVerifyToken.RLock()
	calls := mock.calls.VerifyToken
	mock.lockVerifyToken.RUnlock()
	return calls
}
