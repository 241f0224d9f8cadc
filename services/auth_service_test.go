package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
	"github.com/Azimiwizard/App-1/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T, provider AuthProvider) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	ur := repository.NewUserRepository(db)
	return NewAuthService(ur, provider, testSecret, "LETMEIN", time.Hour), ur
}

func TestRegisterAndLoginLocal(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterIn{
		Username: "frank",
		Email:    "Frank@Example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "frank@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "Sup3r$ecret", user.Password)

	token, logged, err := svc.Login(ctx, "frank@example.com", "Sup3r$ecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "frank", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterIn{Username: "grace", Email: "grace@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "grace@example.com", "WrongP4ss!")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, _, err = svc.Login(ctx, "nobody@example.com", "Sup3r$ecret")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterIn
	}{
		{"short username", RegisterIn{Username: "ab", Email: "a@b.com", Password: "Sup3r$ecret"}},
		{"leading digit", RegisterIn{Username: "1frank", Email: "a@b.com", Password: "Sup3r$ecret"}},
		{"short password", RegisterIn{Username: "frank", Email: "a@b.com", Password: "S3c$et"}},
		{"no digit", RegisterIn{Username: "frank", Email: "a@b.com", Password: "Super$ecret"}},
		{"no upper", RegisterIn{Username: "frank", Email: "a@b.com", Password: "sup3r$ecret"}},
		{"no special", RegisterIn{Username: "frank", Email: "a@b.com", Password: "Sup3rSecret"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tc.in)
			require.Error(t, err)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterIn{Username: "henry", Email: "henry@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterIn{Username: "henry", Email: "other@example.com", Password: "Sup3r$ecret"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.Register(ctx, &RegisterIn{Username: "henry2", Email: "HENRY@example.com", Password: "Sup3r$ecret"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestRegisterWithAdminCode(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	// code matching ignores case and embedded whitespace
	user, err := svc.Register(ctx, &RegisterIn{
		Username:  "boss",
		Email:     "boss@example.com",
		Password:  "Sup3r$ecret",
		AdminCode: " let me in ",
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestClaimAdmin(t *testing.T) {
	svc, ur := newAuthService(t, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterIn{Username: "ivy", Email: "ivy@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)
	require.False(t, user.IsAdmin)

	err = svc.ClaimAdmin(user.ID, "wrong")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.ClaimAdmin(user.ID, "letmein"))
	fresh, err := ur.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, fresh.IsAdmin)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterIn{Username: "jack", Email: "jack@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &RegisterIn{Username: "jill", Email: "jill@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, user.ID, &UpdateProfileIn{Username: "jill"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	updated, err := svc.UpdateProfile(ctx, user.ID, &UpdateProfileIn{Username: "jackson", Password: "N3w$ecret!"})
	require.NoError(t, err)
	assert.Equal(t, "jackson", updated.Username)

	_, _, err = svc.Login(ctx, "jack@example.com", "N3w$ecret!")
	require.NoError(t, err)
}

type fakeProvider struct {
	signUpID  string
	signInID  string
	signInErr error
	updated   map[string]string
}

func (p *fakeProvider) SignUp(context.Context, string, string) (string, error) {
	return p.signUpID, nil
}

func (p *fakeProvider) SignIn(context.Context, string, string) (string, error) {
	return p.signInID, p.signInErr
}

func (p *fakeProvider) UpdatePassword(_ context.Context, authID, pw string) error {
	if p.updated == nil {
		p.updated = map[string]string{}
	}
	p.updated[authID] = pw
	return nil
}

func TestProviderBackedAuth(t *testing.T) {
	provider := &fakeProvider{signUpID: "auth-123", signInID: "auth-123"}
	svc, _ := newAuthService(t, provider)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterIn{Username: "kate", Email: "kate@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)
	assert.Equal(t, "auth-123", user.AuthID)
	assert.Empty(t, user.Password)

	_, logged, err := svc.Login(ctx, "kate@example.com", "Sup3r$ecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	// provider session without a local account
	provider.signInID = "auth-999"
	_, _, err = svc.Login(ctx, "ghost@example.com", "Sup3r$ecret")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.UpdateProfile(ctx, user.ID, &UpdateProfileIn{Password: "N3w$ecret!"})
	require.NoError(t, err)
	assert.Equal(t, "N3w$ecret!", provider.updated["auth-123"])
}
