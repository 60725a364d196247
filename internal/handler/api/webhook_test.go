//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCheckout)

	s.router.POST("/stripe/webhook", s.handler.Handle)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandle() {
	payload := `{"type":"checkout.session.completed"}`
	headers := map[string]string{"Stripe-Signature": "t=1,v1=sig"}

	s.Run("success: acknowledges a processed event", func() {
		s.mockCheckout.EXPECT().HandleWebhook(gomock.Any(), []byte(payload), "t=1,v1=sig").
			Return(nil).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/stripe/webhook", payload, headers)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "received")
	})

	s.Run("error: 400 Bad Request when the event is rejected", func() {
		s.mockCheckout.EXPECT().HandleWebhook(gomock.Any(), []byte(payload), "t=1,v1=sig").
			Return(errors.New("signature mismatch")).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/stripe/webhook", payload, headers)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "Webhook rejected")
	})

	s.Run("error: 400 Bad Request without a signature header", func() {
		s.mockCheckout.EXPECT().HandleWebhook(gomock.Any(), []byte(payload), "").
			Return(errors.New("missing signature")).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/stripe/webhook", payload, nil)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
