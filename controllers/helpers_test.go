package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/MdRakibHossen917/life-nest-company-server/config"
	"github.com/MdRakibHossen917/life-nest-company-server/middleware"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubVerifier struct {
	principals map[string]*services.Principal
}

func (s stubVerifier) Verify(token string) (*services.Principal, error) {
	principal, ok := s.principals[token]
	if !ok {
		return nil, fmt.Errorf("token is invalid")
	}
	return principal, nil
}

type stubGateway struct {
	createdIntents int
}

func (g *stubGateway) CreateIntent(amountCents int64, currency string, customerEmail string) (*services.PaymentIntent, error) {
	g.createdIntents++
	return &services.PaymentIntent{Id: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

// verifier tokens shared by all controller tests
var testPrincipals = map[string]*services.Principal{
	"jane-token":  {Email: "jane@example.com", Name: "Jane Doe"},
	"bob-token":   {Email: "bob@example.com", Name: "Bob"},
	"agent-token": {Email: "agent@example.com", Name: "Agent Smith"},
	"admin-token": {Email: "admin@example.com", Name: "Admin"},
}

func setupSuite(tb testing.TB) (func(tb testing.TB), *models.Database, *gin.Engine, *stubGateway) {
	dbName := "database_controllers_test.db"

	e := os.Remove(dbName)
	if e != nil {
		if !strings.Contains(e.Error(), "no such file or directory") {
			log.Fatal(e)
		}
	}

	// busy timeout: RecordPayment issues two concurrent writes
	gdb, err := gorm.Open(sqlite.Open(dbName+"?_busy_timeout=5000"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}
	db := &models.Database{GormDB: gdb}
	if err := db.Migrate(); err != nil {
		log.Fatal(err)
	}

	gateway := &stubGateway{}
	ctrl := &Controller{DB: db, Config: config.New(), Payments: gateway}
	verifier := stubVerifier{principals: testPrincipals}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/policies/:id", ctrl.GetPolicy)
	r.POST("/newsletter", ctrl.SubscribeNewsletter)

	authorized := r.Group("/")
	authorized.Use(middleware.BearerTokenAuth(verifier))
	authorized.PUT("/users", ctrl.UpsertProfile)
	authorized.GET("/users/:email", ctrl.GetUser)
	authorized.POST("/applications", ctrl.CreateApplication)
	authorized.GET("/applications", ctrl.GetMyApplications)
	authorized.DELETE("/applications/:id", ctrl.DeleteApplication)
	authorized.POST("/payments/create-intent", ctrl.CreatePaymentIntent)
	authorized.POST("/payments", ctrl.RecordPayment)
	authorized.POST("/agents", ctrl.CreateAgentRequest)

	admin := r.Group("/admin")
	admin.Use(middleware.BearerTokenAuth(verifier), middleware.RequireRole(db, models.AdminRole))
	admin.PUT("/users/:email/role", ctrl.UpdateUserRole)
	admin.PUT("/agents/:id/status", ctrl.SetAgentRequestStatus)

	return func(tb testing.TB) {
		err = os.Remove(dbName)
		if err != nil {
			log.Fatal(err)
		}
	}, db, r, gateway
}

func doRequest(r *gin.Engine, method string, path string, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRole(t *testing.T, db *models.Database, email string, role string) {
	t.Helper()
	_, err := db.UpsertUser(email, email, "")
	assert.NoError(t, err)
	_, err = db.UpdateUserRole(email, role)
	assert.NoError(t, err)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
