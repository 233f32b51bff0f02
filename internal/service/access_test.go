package service_test

import (
	"testing"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	hash, err := service.Hash("open-sesame")
	require.NoError(t, err)
	as := service.NewAuthService(hash)

	assert.NoError(t, as.Authorize("open-sesame"))
	assert.ErrorIs(t, as.Authorize("open-sesame!"), errorvalues.ErrWrongAccessCode)
	assert.ErrorIs(t, as.Authorize(""), errorvalues.ErrWrongAccessCode)

	unset := service.NewAuthService("")
	assert.ErrorIs(t, unset.Authorize("open-sesame"), errorvalues.ErrWrongAccessCode)

	_, err = service.Hash("")
	assert.Error(t, err)
}
