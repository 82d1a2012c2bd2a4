package desim

// MockHook is written by hand in the shape mockgen produces for a
// single-method interface.

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockHook is a mock of the Hook interface.
type MockHook struct {
	ctrl     *gomock.Controller
	recorder *MockHookMockRecorder
}

// MockHookMockRecorder is the mock recorder for MockHook.
type MockHookMockRecorder struct {
	mock *MockHook
}

// NewMockHook creates a new mock instance.
func NewMockHook(ctrl *gomock.Controller) *MockHook {
	mock := &MockHook{ctrl: ctrl}
	mock.recorder = &MockHookMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHook) EXPECT() *MockHookMockRecorder {
	return m.recorder
}

// Func mocks base method.
func (m *MockHook) Func(ctx HookCtx) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Func", ctx)
}

// Func indicates an expected call of Func.
func (mr *MockHookMockRecorder) Func(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Func", reflect.TypeOf((*MockHook)(nil).Func), ctx)
}
