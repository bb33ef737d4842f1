package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/multiplaymat/mpm-server/internal/models"
	"github.com/multiplaymat/mpm-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	type requestBody struct {
		username string
		password string
		email    string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				username: "alice",
				password: "secret",
				email:    "a@x.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret", "a@x.com").
					Return(&models.User{ID: userID, Name: "alice", Email: "a@x.com", Password: "digest"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing fields",
			reqBody: requestBody{
				username: "alice",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "").
					Return(nil, services.ErrMissingFields)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username, email and password are required.",
		},
		{
			name: "user already exists",
			reqBody: requestBody{
				username: "bob",
				password: "pass",
				email:    "bob@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass", "bob@example.com").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Username already exists.",
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				username: "carol",
				password: "pass",
				email:    "carol@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "pass", "carol@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error.",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Username, email and password are required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(models.RegisterRequest{
					Username: tt.reqBody.username,
					Password: tt.reqBody.password,
					Email:    tt.reqBody.email,
				})
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
			}
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedErr != "" {
				assert.Equal(t, map[string]any{"error": tt.expectedErr}, resp)
				return
			}

			assert.Equal(t, "User registered successfully.", resp["message"])
			user, ok := resp["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, userID.String(), user["id"])
			assert.Equal(t, "alice", user["name"])
			assert.Equal(t, "a@x.com", user["email"])
			assert.NotContains(t, user, "password")
			assert.NotContains(t, rr.Body.String(), "digest")
		})
	}
}

func TestRegisterHandler_FormBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "alice", "secret", "a@x.com").
		Return(&models.User{ID: uuid.New(), Name: "alice", Email: "a@x.com"}, nil)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "secret")
	form.Set("email", "a@x.com")

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	rr := httptest.NewRecorder()

	NewRegisterHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRegisterHandler_OversizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	NewRegisterHandler(NewMockRegisterer(ctrl))(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
