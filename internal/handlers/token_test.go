package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/gradewatch/gradewatch/internal/services"
)

func TestTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(svc *MockLoginer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "alice", "secret123").
					Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access_token":"signed.jwt.token","token_type":"bearer"}`,
		},
		{
			name: "UnknownUser",
			body: `{"username":"ghost","password":"secret123"}`,
			mockSetup: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "ghost", "secret123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name: "WrongPassword",
			body: `{"username":"alice","password":"nope"}`,
			mockSetup: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "alice", "nope").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:           "MissingCredentials",
			body:           `{}`,
			mockSetup:      func(svc *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Username and password are required"}`,
		},
		{
			name: "ServiceError",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(svc *MockLoginer) {
				svc.EXPECT().Login(gomock.Any(), "alice", "secret123").
					Return("", assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.mockSetup(svc)

			handler := NewTokenHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
