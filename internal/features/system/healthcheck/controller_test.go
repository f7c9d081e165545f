package system_healthcheck

import (
	"errors"
	"net/http"
	"testing"

	"diligent-backend/internal/util/logger"
	test_utils "diligent-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHealthRouter(t *testing.T) (*gin.Engine, *MockDatabasePinger) {
	pinger := NewMockDatabasePinger(gomock.NewController(t))
	controller := NewHealthcheckController(NewHealthcheckService(pinger, logger.GetLogger()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/v0"))

	return router, pinger
}

func Test_CheckHealth_WhenDatabaseAnswers_ReturnsOk(t *testing.T) {
	router, pinger := newHealthRouter(t)
	pinger.EXPECT().Ping(gomock.Any()).Return(nil)

	resp := test_utils.MakeGetRequest(t, router, "/api/v0/system/health", "", http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}

func Test_CheckHealth_WhenDatabaseIsDown_Returns503(t *testing.T) {
	router, pinger := newHealthRouter(t)
	pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: connection refused"))

	resp := test_utils.MakeGetRequest(t, router, "/api/v0/system/health", "", http.StatusServiceUnavailable)
	assert.JSONEq(t, `{"code":503,"message":"database is unavailable"}`, string(resp.Body))
}
