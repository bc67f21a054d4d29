package middleware

import (
	"net/http/httptest"
	"testing"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) Create(user *model.User) error { return nil }
func (s *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}
func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) FindAll() ([]model.User, error)          { return nil, nil }
func (s *stubUserRepo) Update(user *model.User) error           { return nil }
func (s *stubUserRepo) UpsertByEmail(user *model.User) error    { return nil }
func (s *stubUserRepo) AssignRole(userID, roleID uuid.UUID) error { return nil }

func okHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "ok"})
}

func TestRequireAuth(t *testing.T) {
	user := &model.User{IsActive: true}
	user.ID = uuid.New()
	repo := &stubUserRepo{user: user}

	app := fiber.New()
	app.Get("/protected", RequireAuth(repo), okHandler)

	// No token
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Malformed header
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Valid token
	token, err := jwt.GenerateToken(user.ID, "admin@qryptogenia.com", []string{"ADMIN"}, []string{"user:read"})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Token for a user the store no longer knows
	token, err = jwt.GenerateToken(uuid.New(), "ghost@example.com", nil, nil)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuth_InactiveUser(t *testing.T) {
	user := &model.User{IsActive: false}
	user.ID = uuid.New()
	repo := &stubUserRepo{user: user}

	app := fiber.New()
	app.Get("/protected", RequireAuth(repo), okHandler)

	token, err := jwt.GenerateToken(user.ID, "inactive@example.com", nil, nil)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_permissions", []string{"qr:read", "qr:create"})
		return c.Next()
	})
	app.Get("/allowed", RequirePermission("qr:read"), okHandler)
	app.Get("/denied", RequirePermission("user:delete"), okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/allowed", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/denied", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_roles", []string{"CLIENT"})
		return c.Next()
	})
	app.Get("/admin", RequireRole("ADMIN"), okHandler)
	app.Get("/any", RequireRole("ADMIN", "CLIENT"), okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/any", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
