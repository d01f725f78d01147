package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*stubUserRepo, AuthService) {
	t.Helper()
	users := newStubUserRepo()
	return users, NewAuthService(users, testSecret, 7*24*time.Hour)
}

func seedAdmin(t *testing.T, users *stubUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}))
}

func TestLogin_Success(t *testing.T) {
	users, svc := newAuthFixture(t)
	seedAdmin(t, users, "admin@example.com", "hunter22")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "admin@example.com", resp.Admin.Email)

	// Token is signed with our secret and carries the admin role.
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestLogin_WrongPassword(t *testing.T) {
	users, svc := newAuthFixture(t)
	seedAdmin(t, users, "admin@example.com", "hunter22")

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	svcErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid email or password", svcErr.Message)
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	svcErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid email or password", svcErr.Message)
}

func TestLogin_CustomerRoleRejected(t *testing.T) {
	users, svc := newAuthFixture(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Email:        "customer@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
		IsActive:     true,
	}))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "customer@example.com", Password: "hunter22"})
	require.Error(t, err)
}

func TestRegisterAdmin_HashesPasswordAndSetsRole(t *testing.T) {
	users, svc := newAuthFixture(t)

	resp, err := svc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		Name: "New Admin", Email: "new@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)

	stored, err := users.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, stored.Role)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestRegisterAdmin_DuplicateEmail(t *testing.T) {
	users, svc := newAuthFixture(t)
	seedAdmin(t, users, "admin@example.com", "hunter22")

	_, err := svc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		Name: "Dup", Email: "admin@example.com", Password: "hunter22",
	})
	svcErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, svcErr.Kind)
}
