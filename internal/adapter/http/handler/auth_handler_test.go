package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"cardwall/internal/adapter/database/memory"
	"cardwall/internal/adapter/token"
	"cardwall/internal/core/port"
	"cardwall/internal/core/service"
	"cardwall/internal/shared"
)

type AuthHandlerSuite struct {
	suite.Suite
	Store  port.UserStore
	Router *gin.Engine
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.Store = memory.NewStore()

	authService := service.NewAuthService(s.Store, token.NewJWT("test-secret"), zerolog.Nop())
	authHandler := NewAuthHandler(authService, shared.NewAppMetrics(), zerolog.Nop())

	s.Router = setupAuthTestRouter(authHandler)
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func setupAuthTestRouter(authHandler *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := router.Group("/auth/local")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("", authHandler.Login)
	}

	return router
}

func (s *AuthHandlerSuite) register(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/auth/local/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AuthHandlerSuite) login(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/auth/local", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AuthHandlerSuite) TestRegisterSuccess() {
	rr := s.register(`{"username": "anna_vasylashko", "password": "048PJs52rt!"}`)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	body, _ := io.ReadAll(rr.Body)

	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["jwt"]).ToNot(BeEmpty())

	user := data["user"].(map[string]any)

	Expect(user["username"]).To(Equal("anna_vasylashko"))
	Expect(user).ToNot(HaveKey("password"))
	Expect(user).ToNot(HaveKey("token"))
}

func (s *AuthHandlerSuite) TestRegisterInvalidUsername() {
	rr := s.register(`{"username": "Anna", "password": "048PJs52rt!"}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["error"]).To(Equal("invalid username"))
	Expect(data["details"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestRegisterInvalidPassword() {
	rr := s.register(`{"username": "anna_vasylashko", "password": "1234"}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["error"]).To(Equal("invalid password"))
}

// A bad username outranks a bad password when both fail.
func (s *AuthHandlerSuite) TestRegisterBothInvalidReportsUsername() {
	rr := s.register(`{"username": "Anna", "password": "1234"}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["error"]).To(Equal("invalid username"))
}

func (s *AuthHandlerSuite) TestRegisterUsernameTaken() {
	rr := s.register(`{"username": "anna_vasylashko", "password": "048PJs52rt!"}`)
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.register(`{"username": "anna_vasylashko", "password": "Other48PJs52rt!"}`)

	Expect(rr.Code).To(Equal(http.StatusConflict))
}

func (s *AuthHandlerSuite) TestRegisterMalformedBody() {
	rr := s.register(`{"username": `)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	rr := s.register(`{"username": "anna_vasylashko", "password": "048PJs52rt!"}`)
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.login(`{"username": "anna_vasylashko", "password": "048PJs52rt!"}`)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["jwt"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestLoginWrongPassword() {
	rr := s.register(`{"username": "anna_vasylashko", "password": "048PJs52rt!"}`)
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.login(`{"username": "anna_vasylashko", "password": "123NotAnna!"}`)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["error"]).To(Equal("bad credentials"))
}

// Login skips shape validation: an empty body is just a credential
// mismatch, never a 400.
func (s *AuthHandlerSuite) TestLoginEmptyBodyIsUnauthorized() {
	rr := s.login(`{}`)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *AuthHandlerSuite) TestLoginUnknownUser() {
	rr := s.login(`{"username": "nobody_here", "password": "048PJs52rt!"}`)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}
