package auth

import (
	"sync"

	"github.com/Sweetdevil144/feedback-platform/internal/auth"
	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc func(user domain.User) (string, error)
	ParseFunc func(token string) (*auth.Claims, error)

	calls struct {
		Issue []struct {
			User domain.User
		}
		Parse []struct {
			Token string
		}
	}
	lockIssue sync.RWMutex
	lockParse sync.RWMutex
}

func (mock *tokenManagerMock) Issue(user domain.User) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct{ User domain.User }{User: user}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(user)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	User domain.User
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Parse(token string) (*auth.Claims, error) {
	if mock.ParseFunc == nil {
		panic("tokenManagerMock.ParseFunc: method is nil but tokenManager.Parse was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockParse.Lock()
	mock.calls.Parse = append(mock.calls.Parse, callInfo)
	mock.lockParse.Unlock()
	return mock.ParseFunc(token)
}

func (mock *tokenManagerMock) ParseCalls() []struct {
	Token string
} {
	mock.lockParse.RLock()
	calls := mock.calls.Parse
	mock.lockParse.RUnlock()
	return calls
}
