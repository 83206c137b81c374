package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() *TokenService {
	return &TokenService{secret: []byte("unit-test-secret"), expiry: time.Hour}
}

func TestTokenRoundTrip(t *testing.T) {
	s := testTokenService()
	id := uuid.New()

	token, err := s.Generate(id, model.RoleCandidate)
	require.NoError(t, err)

	p, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCandidate, p.Role)
	assert.Equal(t, id, p.ID)
}

func TestTokenRoundTripCompany(t *testing.T) {
	s := testTokenService()
	id := uuid.New()

	token, err := s.Generate(id, model.RoleCompany)
	require.NoError(t, err)

	p, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCompany, p.Role)
	assert.Equal(t, id, p.ID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := testTokenService().Generate(uuid.New(), model.RoleCandidate)
	require.NoError(t, err)

	other := &TokenService{secret: []byte("different-secret"), expiry: time.Hour}
	p, err := other.Verify(token)
	assert.Error(t, err)
	assert.True(t, p.IsAnonymous())
}

func TestTokenExpired(t *testing.T) {
	s := &TokenService{secret: []byte("unit-test-secret"), expiry: -time.Minute}
	token, err := s.Generate(uuid.New(), model.RoleCandidate)
	require.NoError(t, err)

	p, err := s.Verify(token)
	assert.Error(t, err)
	assert.True(t, p.IsAnonymous())
}

func TestTokenGarbage(t *testing.T) {
	p, err := testTokenService().Verify("not.a.token")
	assert.Error(t, err)
	assert.True(t, p.IsAnonymous())
}
