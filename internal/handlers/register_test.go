package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/projecthub/backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", nil, nil).
					Return(userID, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already exists",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", nil, nil).
					Return(uuid.Nil, services.ErrEmailExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Email already exists",
		},
		{
			name: "username already exists",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", nil, nil).
					Return(uuid.Nil, services.ErrUsernameExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already exists",
		},
		{
			name: "ambiguous conflict",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", nil, nil).
					Return(uuid.Nil, services.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User with this information already exists",
		},
		{
			name: "validation error passes through",
			body: `{"username":"jd","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jd", "john@example.com", "secret123", nil, nil).
					Return(uuid.Nil, &services.ValidationError{Message: "Username must be between 3 and 50 characters"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username must be between 3 and 50 characters",
		},
		{
			name: "internal server error",
			body: `{"username":"john_doe","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", nil, nil).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          `{invalid`,
			mockSetup:     func(m *MockRegisterer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp RegisterResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "User registered successfully", resp.Message)
				assert.Equal(t, userID, resp.UserID)
			}
		})
	}
}
