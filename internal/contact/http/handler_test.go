package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/contact"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg contact.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid := `{"user_name":"Ada","user_email":"ada@example.com","service":"devops","message":"Hi"}`

	tests := []struct {
		name       string
		body       string
		setup      func(*MockSender)
		wantStatus int
		wantBody   string
	}{
		{
			name: "sent",
			body: valid,
			setup: func(m *MockSender) {
				m.On("Send", mock.Anything, contact.Message{Name: "Ada", Email: "ada@example.com", Service: "devops", Message: "Hi"}).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"success"`,
		},
		{
			name: "rejected by provider",
			body: valid,
			setup: func(m *MockSender) {
				m.On("Send", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"label":"Failed to Send"`,
		},
		{
			name:       "invalid email",
			body:       `{"user_name":"Ada","user_email":"nope","message":"Hi"}`,
			setup:      func(*MockSender) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"fields":["user_email"]`,
		},
		{
			name:       "malformed json",
			body:       `{`,
			setup:      func(*MockSender) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(MockSender)
			tt.setup(sender)

			r := gin.New()
			New(sender, nil).Register(r.Group("/api/v1"))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			sender.AssertExpectations(t)
		})
	}
}

func TestHandler_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(nil, nil).Register(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
