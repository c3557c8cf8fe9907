package admin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

func TestService_OpenAccessWithoutPin(t *testing.T) {
	svc := NewService("", logger.Nop())

	assert.False(t, svc.RequiresPin())
	assert.NoError(t, svc.Verify(""))
	assert.NoError(t, svc.Verify("anything"))
}

func TestService_BootstrapPin(t *testing.T) {
	svc := NewService("", logger.Nop())

	require.NoError(t, svc.ChangePin("", "1234"))

	assert.True(t, svc.RequiresPin())
	assert.NoError(t, svc.Verify("1234"))
	assert.ErrorIs(t, svc.Verify("wrong"), ErrUnauthorized)
}

func TestService_ChangePinRequiresCurrent(t *testing.T) {
	svc := NewService("0000", logger.Nop())

	assert.ErrorIs(t, svc.ChangePin("1111", "2222"), ErrUnauthorized)
	require.NoError(t, svc.ChangePin("0000", "2222"))

	// действующий PIN из рантайма важнее конфигурации
	assert.ErrorIs(t, svc.Verify("0000"), ErrUnauthorized)
	assert.NoError(t, svc.Verify("2222"))
}

func TestService_ChangePinLength(t *testing.T) {
	svc := NewService("", logger.Nop())

	assert.ErrorIs(t, svc.ChangePin("", "123"), ErrInvalidPin)
	assert.ErrorIs(t, svc.ChangePin("", strings.Repeat("9", 33)), ErrInvalidPin)
	assert.NoError(t, svc.ChangePin("", strings.Repeat("9", 32)))
}

func TestService_InvalidLengthCheckedBeforePin(t *testing.T) {
	svc := NewService("0000", logger.Nop())

	assert.ErrorIs(t, svc.ChangePin("wrong", "1"), ErrInvalidPin)
}
