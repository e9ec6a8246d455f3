package http_swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	http_init "github.com/humanbelnik/kinomatch/core/internal/delivery/http/init"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SwaggerSuite struct {
	suite.Suite
}

func (s *SwaggerSuite) TestServesUI(t provider.T) {
	pool := http_init.NewControllerPool()
	pool.Add(New())
	pool.Register()

	w := httptest.NewRecorder()
	pool.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/swagger/index.html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func (s *SwaggerSuite) TestHealth(t provider.T) {
	pool := http_init.NewControllerPool()
	pool.Register()

	w := httptest.NewRecorder()
	pool.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSwaggerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(SwaggerSuite))
}
