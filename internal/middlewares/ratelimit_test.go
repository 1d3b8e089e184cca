package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		count            int64
		counterErr       error
		expectedStatus   int
		expectNextCalled bool
	}{
		{name: "under limit", count: 3, expectedStatus: http.StatusOK, expectNextCalled: true},
		{name: "at limit", count: 5, expectedStatus: http.StatusOK, expectNextCalled: true},
		{name: "over limit", count: 6, expectedStatus: http.StatusTooManyRequests, expectNextCalled: false},
		{name: "counter error fails open", counterErr: errors.New("redis down"), expectedStatus: http.StatusOK, expectNextCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewMockRateCounter(ctrl)
			counter.EXPECT().
				Incr(gomock.Any(), gomock.Any(), time.Minute).
				Return(tt.count, tt.counterErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RateLimitMiddleware(counter, 5, time.Minute)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/search", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestRateLimitMiddleware_KeyPerClientAndRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := NewMockRateCounter(ctrl)
	counter.EXPECT().
		Incr(gomock.Any(), "ratelimit:/api/search:203.0.113.7", time.Minute).
		Return(int64(1), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := RateLimitMiddleware(counter, 5, time.Minute)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/search", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRateLimitMiddleware_RemoteAddrFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := NewMockRateCounter(ctrl)
	counter.EXPECT().
		Incr(gomock.Any(), "ratelimit:/register:192.0.2.1", time.Minute).
		Return(int64(1), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := RateLimitMiddleware(counter, 5, time.Minute)(next)

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.RemoteAddr = "192.0.2.1:51234"
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
