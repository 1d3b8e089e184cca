package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gradewatch/gradewatch/internal/models"
	"github.com/gradewatch/gradewatch/internal/services"
)

func TestConfirmImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "alice"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(svc *MockImageConfirmer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"card_name":"gyarados","image_url":"https://img.example/gyarados.jpg"}`,
			mockSetup: func(svc *MockImageConfirmer) {
				svc.EXPECT().ConfirmImage(gomock.Any(), user.UserID, "gyarados", "https://img.example/gyarados.jpg").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true}`,
		},
		{
			name: "NotFound",
			body: `{"card_name":"never searched","image_url":"https://img.example/x.jpg"}`,
			mockSetup: func(svc *MockImageConfirmer) {
				svc.EXPECT().ConfirmImage(gomock.Any(), user.UserID, "never searched", "https://img.example/x.jpg").
					Return(services.ErrSearchNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Saved search not found"}`,
		},
		{
			name:           "MissingImageURL",
			body:           `{"card_name":"gyarados"}`,
			mockSetup:      func(svc *MockImageConfirmer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Card name and image URL are required"}`,
		},
		{
			name: "ServiceError",
			body: `{"card_name":"gyarados","image_url":"https://img.example/gyarados.jpg"}`,
			mockSetup: func(svc *MockImageConfirmer) {
				svc.EXPECT().ConfirmImage(gomock.Any(), user.UserID, "gyarados", "https://img.example/gyarados.jpg").
					Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockImageConfirmer(ctrl)
			tt.mockSetup(svc)

			handler := NewConfirmImageHandler(svc)

			req := authedRequest(t, http.MethodPost, "/api/confirm_image", tt.body, user)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
