package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockSender struct {
	mock.Mock
	name string
}

func (m *MockSender) Name() string { return m.name }

func (m *MockSender) SendMail(ctx context.Context, to, cc []string, subject, html string) error {
	return m.Called(ctx, to, cc, subject, html).Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) NotificationResult(transport string, ok bool) {
	m.Called(transport, ok)
}

func TestService_PrimarySucceeds(t *testing.T) {
	ctx := context.Background()
	primary := &MockSender{name: "graph"}
	fallback := &MockSender{name: "resend"}
	primary.On("SendMail", ctx, []string{"a@example.com"}, []string{}, "subj", "<p>hi</p>").Return(nil)

	svc := NewService([]Sender{primary, fallback}, nil, logger.Nop())

	assert.True(t, svc.Send(ctx, []string{"a@example.com"}, nil, "subj", "<p>hi</p>"))
	primary.AssertExpectations(t)
	fallback.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_FallbackUsed(t *testing.T) {
	ctx := context.Background()
	primary := &MockSender{name: "graph"}
	fallback := &MockSender{name: "resend"}
	primary.On("SendMail", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("401"))
	fallback.On("SendMail", ctx, []string{"a@example.com"}, []string{"c@example.com"}, "subj", "body").Return(nil)

	metrics := new(MockMetrics)
	metrics.On("NotificationResult", "graph", false).Return()
	metrics.On("NotificationResult", "resend", true).Return()

	svc := NewService([]Sender{primary, fallback}, metrics, logger.Nop())

	assert.True(t, svc.Send(ctx, []string{"a@example.com"}, []string{"c@example.com", " "}, "subj", "body"))
	metrics.AssertExpectations(t)
}

func TestService_AllFail(t *testing.T) {
	ctx := context.Background()
	primary := &MockSender{name: "graph"}
	fallback := &MockSender{name: "resend"}
	primary.On("SendMail", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("timeout"))
	fallback.On("SendMail", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("not configured"))

	svc := NewService([]Sender{primary, fallback}, nil, logger.Nop())

	assert.False(t, svc.Send(ctx, []string{"a@example.com"}, nil, "subj", "body"))
}

func TestService_NoRecipients(t *testing.T) {
	primary := &MockSender{name: "graph"}
	svc := NewService([]Sender{primary}, nil, logger.Nop())

	assert.False(t, svc.Send(context.Background(), []string{""}, nil, "subj", "body"))
	primary.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
