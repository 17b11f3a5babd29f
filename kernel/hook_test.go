package kernel_test

import (
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/gvwilson/asimpy/kernel"
)

// MockHook is a hand-written stand-in for what mockgen would generate
// for kernel.Hook, checked in rather than regenerated in CI.
type MockHook struct {
	ctrl     *gomock.Controller
	recorder *MockHookRecorder
}

type MockHookRecorder struct {
	mock *MockHook
}

func NewMockHook(ctrl *gomock.Controller) *MockHook {
	m := &MockHook{ctrl: ctrl}
	m.recorder = &MockHookRecorder{m}
	return m
}

func (m *MockHook) EXPECT() *MockHookRecorder { return m.recorder }

func (m *MockHook) Func(ctx kernel.HookCtx) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Func", ctx)
}

func (mr *MockHookRecorder) Func(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Func", reflect.TypeOf((*MockHook)(nil).Func), ctx)
}

func TestEnvironmentInvokesHookAroundEveryDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := kernel.NewEnvironment()
	hook := NewMockHook(ctrl)

	gomock.InOrder(
		hook.EXPECT().Func(gomock.Any()),
		hook.EXPECT().Func(gomock.Any()),
	)

	env.AcceptHook(hook)
	env.Schedule(1, func() {})
	env.Run(kernel.StopCondition{})
}
