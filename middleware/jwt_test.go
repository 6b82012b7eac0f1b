package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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

func newAuthTestRouter(verifier services.TokenVerifier) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	handlerCalls := 0
	r := gin.New()
	r.GET("/protected", BearerTokenAuth(verifier), func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(PRINCIPAL_EMAIL_KEY),
			"name":  c.GetString(PRINCIPAL_NAME_KEY),
		})
	})
	return r, &handlerCalls
}

func TestBearerTokenAuthMissingHeader(t *testing.T) {
	r, handlerCalls := newAuthTestRouter(stubVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *handlerCalls)
	assert.Contains(t, w.Body.String(), "No Authorization header provided")
}

func TestBearerTokenAuthMalformedHeader(t *testing.T) {
	r, handlerCalls := newAuthTestRouter(stubVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *handlerCalls)
}

func TestBearerTokenAuthInvalidToken(t *testing.T) {
	r, handlerCalls := newAuthTestRouter(stubVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *handlerCalls)
}

func TestBearerTokenAuthValidToken(t *testing.T) {
	verifier := stubVerifier{principals: map[string]*services.Principal{
		"jane-token": {Email: "jane@example.com", Name: "Jane Doe"},
	}}
	r, handlerCalls := newAuthTestRouter(verifier)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer jane-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *handlerCalls)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}
