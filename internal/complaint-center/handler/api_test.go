package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/complaint-center/handler"
	"github.com/kart-io/complaint-center/internal/complaint-center/router"
	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/auth/jwt"
	"github.com/kart-io/complaint-center/pkg/middleware"
)

const testJWTKey = "test-signing-key-with-32-characters!"

type apiEnv struct {
	engine  *gin.Engine
	factory store.Factory
	auth    *biz.AuthService
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	factory := store.NewMemoryFactory()
	jwtAuth, err := jwt.New(jwt.WithKey(testJWTKey))
	require.NoError(t, err)

	policy := biz.NewPolicy()
	authService := biz.NewAuthService(jwtAuth, factory)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.Register(engine, jwtAuth, router.Handlers{
		Health: handler.NewHealthHandler(handler.PingerFunc(func(context.Context) error {
			return nil
		})),
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(biz.NewUserService(factory, policy)),
		Complaint:    handler.NewComplaintHandler(biz.NewComplaintService(factory, policy)),
		Notification: handler.NewNotificationHandler(biz.NewNotificationService(factory, policy)),
	})

	return &apiEnv{engine: engine, factory: factory, auth: authService}
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

// seedAndLogin creates an account directly in the store and returns a token.
func (e *apiEnv) seedAndLogin(t *testing.T, name, email string, role model.Role) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, e.factory.Users().Create(context.Background(), &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}))

	resp, err := e.auth.Login(context.Background(), &model.LoginRequest{Email: email, Password: "secret123"})
	require.NoError(t, err)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	env := newAPIEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongo":"up"`)
}

func TestHealthzReportsDatastoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	down := handler.NewHealthHandler(handler.PingerFunc(func(context.Context) error {
		return errors.New("no reachable servers")
	}))
	engine.GET("/healthz", down.Healthz)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no reachable servers")
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newAPIEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var user model.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, model.RoleStudent, user.Role)

	w, resp = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	assert.NotEmpty(t, login.Token)

	w, resp = env.do(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestRegisterValidation(t *testing.T) {
	env := newAPIEnv(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"email": "a@example.com", "password": "secret123"}},
		{"bad email", gin.H{"name": "Ada", "email": "not-an-email", "password": "secret123"}},
		{"short password", gin.H{"name": "Ada", "email": "a@example.com", "password": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := env.do(t, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := newAPIEnv(t)
	body := gin.H{"name": "Ada", "email": "ada@example.com", "password": "secret123"}

	w, _ := env.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newAPIEnv(t)
	env.seedAndLogin(t, "Ada", "ada@example.com", model.RoleStudent)

	w, _ := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newAPIEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/complaints"},
		{http.MethodPost, "/api/complaints"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodGet, "/api/users"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w, _ := env.do(t, r.method, r.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestComplaintFlow(t *testing.T) {
	env := newAPIEnv(t)
	studentToken := env.seedAndLogin(t, "Ada", "ada@example.com", model.RoleStudent)
	adminToken := env.seedAndLogin(t, "Grace", "grace@example.com", model.RoleAdmin)

	w, resp := env.do(t, http.MethodPost, "/api/complaints", studentToken, gin.H{
		"category":    "Facilities",
		"description": "The projector in room 204 does not turn on.",
	})
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var complaint model.Complaint
	require.NoError(t, json.Unmarshal(resp.Data, &complaint))
	assert.Equal(t, model.StatusPending, complaint.Status)

	// Students cannot drive the status.
	w, _ = env.do(t, http.MethodPut,
		fmt.Sprintf("/api/complaints/%s/status", complaint.ID.Hex()), studentToken,
		gin.H{"status": "Resolved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp = env.do(t, http.MethodPut,
		fmt.Sprintf("/api/complaints/%s/status", complaint.ID.Hex()), adminToken,
		gin.H{"status": "In Progress"})
	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	require.NoError(t, json.Unmarshal(resp.Data, &complaint))
	assert.Equal(t, model.StatusInProgress, complaint.Status)
	require.NotNil(t, complaint.User)
	assert.Equal(t, "Ada", complaint.User.Name)

	w, _ = env.do(t, http.MethodPut,
		fmt.Sprintf("/api/complaints/%s/status", complaint.ID.Hex()), adminToken,
		gin.H{"status": "Escalated"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Admin listing includes the filer snapshot.
	w, resp = env.do(t, http.MethodGet, "/api/complaints", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var list model.ComplaintList
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, int64(1), list.TotalCount)
	require.NotNil(t, list.Items[0].User)
	assert.Equal(t, "ada@example.com", list.Items[0].User.Email)

	// So does the student's own listing.
	w, resp = env.do(t, http.MethodGet, "/api/complaints", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, int64(1), list.TotalCount)
	require.NotNil(t, list.Items[0].User)
	assert.Equal(t, "Ada", list.Items[0].User.Name)
}

func TestUserManagement(t *testing.T) {
	env := newAPIEnv(t)
	superToken := env.seedAndLogin(t, "Root", "root@example.com", model.RoleSuperAdmin)
	adminToken := env.seedAndLogin(t, "Grace", "grace@example.com", model.RoleAdmin)

	t.Run("admin cannot list accounts", func(t *testing.T) {
		w, _ := env.do(t, http.MethodGet, "/api/users", adminToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("superadmin creates an admin", func(t *testing.T) {
		w, resp := env.do(t, http.MethodPost, "/api/users", superToken, gin.H{
			"name":     "New Admin",
			"email":    "new-admin@example.com",
			"password": "secret123",
			"role":     "admin",
		})
		require.Equal(t, http.StatusOK, w.Code, resp.Message)

		var user model.User
		require.NoError(t, json.Unmarshal(resp.Data, &user))
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("second superadmin is rejected", func(t *testing.T) {
		w, _ := env.do(t, http.MethodPost, "/api/users", superToken, gin.H{
			"name":     "Usurper",
			"email":    "usurper@example.com",
			"password": "secret123",
			"role":     "superadmin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("superadmin cannot be deleted", func(t *testing.T) {
		super, err := env.factory.Users().GetByEmail(context.Background(), "root@example.com")
		require.NoError(t, err)

		w, _ := env.do(t, http.MethodDelete, "/api/users/"+super.ID.Hex(), superToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("superadmin deletes a student", func(t *testing.T) {
		env.seedAndLogin(t, "Temp", "temp@example.com", model.RoleStudent)
		student, err := env.factory.Users().GetByEmail(context.Background(), "temp@example.com")
		require.NoError(t, err)

		w, _ := env.do(t, http.MethodDelete, "/api/users/"+student.ID.Hex(), superToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	env := newAPIEnv(t)
	studentToken := env.seedAndLogin(t, "Ada", "ada@example.com", model.RoleStudent)
	adminToken := env.seedAndLogin(t, "Grace", "grace@example.com", model.RoleAdmin)

	w, _ := env.do(t, http.MethodPost, "/api/notifications", studentToken, gin.H{
		"title":   "Nope",
		"message": "students cannot broadcast",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/notifications", adminToken, gin.H{
		"title":   "Maintenance window",
		"message": "The portal will be down on Saturday.",
	})
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var notification model.Notification
	require.NoError(t, json.Unmarshal(resp.Data, &notification))

	w, resp = env.do(t, http.MethodGet, "/api/notifications", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	var list model.NotificationList
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, int64(1), list.TotalCount)
	require.NotNil(t, list.Items[0].CreatedByUser)
	assert.Equal(t, "grace@example.com", list.Items[0].CreatedByUser.Email)

	w, _ = env.do(t, http.MethodDelete, "/api/notifications/"+notification.ID.Hex(), studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = env.do(t, http.MethodDelete, "/api/notifications/"+notification.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
