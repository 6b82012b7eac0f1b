package middleware

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSuite(tb testing.TB) (func(tb testing.TB), *models.Database) {
	dbName := "database_roles_test.db"

	e := os.Remove(dbName)
	if e != nil {
		if !strings.Contains(e.Error(), "no such file or directory") {
			log.Fatal(e)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}
	database := &models.Database{GormDB: gdb}
	if err := database.Migrate(); err != nil {
		log.Fatal(err)
	}

	return func(tb testing.TB) {
		err = os.Remove(dbName)
		if err != nil {
			log.Fatal(err)
		}
	}, database
}

func newRoleTestRouter(db *models.Database, verifier services.TokenVerifier) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	handlerCalls := 0
	handler := func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(USER_ROLE_KEY)})
	}

	r := gin.New()
	agent := r.Group("/agent")
	agent.Use(BearerTokenAuth(verifier), RequireRole(db, models.AgentRole))
	agent.GET("/resource", handler)

	admin := r.Group("/admin")
	admin.Use(BearerTokenAuth(verifier), RequireRole(db, models.AdminRole))
	admin.GET("/resource", handler)

	either := r.Group("/either")
	either.Use(BearerTokenAuth(verifier), RequireRole(db, models.AgentRole, models.AdminRole))
	either.GET("/resource", handler)

	return r, &handlerCalls
}

func seedUser(t *testing.T, db *models.Database, email string, role string) {
	t.Helper()
	_, err := db.UpsertUser(email, "Test User", "")
	assert.NoError(t, err)
	if role != models.UserRole {
		_, err = db.UpdateUserRole(email, role)
		assert.NoError(t, err)
	}
}

func get(r *gin.Engine, path string, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleUserForbidden(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	verifier := stubVerifier{principals: map[string]*services.Principal{
		"user-token": {Email: "user@example.com", Name: "Plain User"},
	}}
	r, handlerCalls := newRoleTestRouter(db, verifier)
	seedUser(t, db, "user@example.com", models.UserRole)

	assert.Equal(t, http.StatusForbidden, get(r, "/agent/resource", "user-token").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin/resource", "user-token").Code)
	assert.Equal(t, 0, *handlerCalls)
}

func TestRequireRoleRolesAreDisjoint(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	verifier := stubVerifier{principals: map[string]*services.Principal{
		"admin-token": {Email: "admin@example.com", Name: "Admin"},
		"agent-token": {Email: "agent@example.com", Name: "Agent"},
	}}
	r, handlerCalls := newRoleTestRouter(db, verifier)
	seedUser(t, db, "admin@example.com", models.AdminRole)
	seedUser(t, db, "agent@example.com", models.AgentRole)

	// admin does not pass an agent-only gate, nor agent an admin-only one
	assert.Equal(t, http.StatusForbidden, get(r, "/agent/resource", "admin-token").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin/resource", "agent-token").Code)
	assert.Equal(t, 0, *handlerCalls)

	assert.Equal(t, http.StatusOK, get(r, "/agent/resource", "agent-token").Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin/resource", "admin-token").Code)
	assert.Equal(t, 2, *handlerCalls)
}

func TestRequireRoleVariadicAdmitsListedRoles(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	verifier := stubVerifier{principals: map[string]*services.Principal{
		"admin-token": {Email: "admin@example.com", Name: "Admin"},
		"agent-token": {Email: "agent@example.com", Name: "Agent"},
		"user-token":  {Email: "user@example.com", Name: "User"},
	}}
	r, _ := newRoleTestRouter(db, verifier)
	seedUser(t, db, "admin@example.com", models.AdminRole)
	seedUser(t, db, "agent@example.com", models.AgentRole)
	seedUser(t, db, "user@example.com", models.UserRole)

	assert.Equal(t, http.StatusOK, get(r, "/either/resource", "admin-token").Code)
	assert.Equal(t, http.StatusOK, get(r, "/either/resource", "agent-token").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/either/resource", "user-token").Code)
}

func TestRequireRoleStorageFailureIsUnavailable(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	verifier := stubVerifier{principals: map[string]*services.Principal{
		"agent-token": {Email: "agent@example.com", Name: "Agent"},
	}}
	r, handlerCalls := newRoleTestRouter(db, verifier)
	seedUser(t, db, "agent@example.com", models.AgentRole)

	sqlDB, err := db.GormDB.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	// a role-store failure is unavailable, not forbidden
	w := get(r, "/agent/resource", "agent-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, *handlerCalls)
}

func TestRequireRoleMissingRecordReadsAsUser(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	verifier := stubVerifier{principals: map[string]*services.Principal{
		"ghost-token": {Email: "ghost@example.com", Name: "Ghost"},
	}}
	r, handlerCalls := newRoleTestRouter(db, verifier)

	// no user record exists: authorization treats the caller as role user
	assert.Equal(t, http.StatusForbidden, get(r, "/agent/resource", "ghost-token").Code)
	assert.Equal(t, 0, *handlerCalls)

	// and the check must not have created a record
	user, err := db.GetUserByEmail("ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
