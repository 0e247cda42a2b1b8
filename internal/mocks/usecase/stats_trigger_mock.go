package usecasemock

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// StatsTrigger is a mock type for the StatsTrigger type
type StatsTrigger struct {
	mock.Mock
}

// MatchEventsChanged provides a mock function with given fields: ctx, matchID, playerIDs
func (_m *StatsTrigger) MatchEventsChanged(ctx context.Context, matchID string, playerIDs ...string) {
	_va := make([]interface{}, len(playerIDs))
	for _i := range playerIDs {
		_va[_i] = playerIDs[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, ctx, matchID)
	_ca = append(_ca, _va...)
	_m.Called(_ca...)
}

// SeasonsChanged provides a mock function with given fields: ctx, seasonIDs
func (_m *StatsTrigger) SeasonsChanged(ctx context.Context, seasonIDs ...string) {
	_va := make([]interface{}, len(seasonIDs))
	for _i := range seasonIDs {
		_va[_i] = seasonIDs[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, ctx)
	_ca = append(_ca, _va...)
	_m.Called(_ca...)
}

// NewStatsTrigger creates a new instance of StatsTrigger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsTrigger(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsTrigger {
	mock := &StatsTrigger{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
