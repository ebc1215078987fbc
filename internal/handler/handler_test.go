package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/model"
	"scholarhub/internal/service"
)

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUserHandler_CreateUser(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockUserService)
		wantStatus int
		check      func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "inserted",
			body: `{"displayName":"Ada","email":"ada@example.com"}`,
			setupMock: func(m *MockUserService) {
				m.On("CreateUser", mock.Anything, "Ada", "ada@example.com").Return(&service.CreateUserResult{InsertedID: &id}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, id.Hex(), body["insertedId"])
			},
		},
		{
			name: "already exists",
			body: `{"displayName":"Ada","email":"ada@example.com"}`,
			setupMock: func(m *MockUserService) {
				m.On("CreateUser", mock.Anything, "Ada", "ada@example.com").Return(&service.CreateUserResult{Existed: true}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "user already exists", body["message"])
				assert.Contains(t, body, "insertedId")
				assert.Nil(t, body["insertedId"])
			},
		},
		{
			name:       "missing email",
			body:       `{"displayName":"Ada"}`,
			setupMock:  func(m *MockUserService) {},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "VALIDATION_ERROR", body["code"])
			},
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMock:  func(m *MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)
			e := newEcho()
			e.POST("/create-user", NewUserHandler(svc).CreateUser)

			rec := serve(e, http.MethodPost, "/create-user", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, decode(t, rec))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(&model.User{Email: "ada@example.com", Role: model.RoleAdmin}, nil)
	svc.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
	e := newEcho()
	e.GET("/users/:email", NewUserHandler(svc).GetUser)

	rec := serve(e, http.MethodGet, "/users/ada@example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decode(t, rec)["role"])

	rec = serve(e, http.MethodGet, "/users/ghost@example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", strings.TrimSpace(rec.Body.String()))
}

func TestUserHandler_UpdateRole(t *testing.T) {
	svc := new(MockUserService)
	id := primitive.NewObjectID().Hex()
	svc.On("UpdateRole", mock.Anything, id, "moderator").Return(&model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	svc.On("UpdateRole", mock.Anything, "bad", "admin").Return(nil, apperrors.ErrInvalidID)
	e := newEcho()
	e.PATCH("/update-role/:id", NewUserHandler(svc).UpdateRole)

	rec := serve(e, http.MethodPatch, "/update-role/"+id+"?role=moderator", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["modifiedCount"])

	rec = serve(e, http.MethodPatch, "/update-role/bad?role=admin", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec)["code"])
}

func TestScholarshipHandler_Listings(t *testing.T) {
	stored := []model.Scholarship{{ID: primitive.NewObjectID(), ScholarshipName: "Alpha"}}
	svc := new(MockScholarshipService)
	svc.On("Top", mock.Anything).Return(&service.Listing{Scholarships: stored}, nil)
	svc.On("All", mock.Anything).Return(&service.Listing{Scholarships: service.FallbackScholarships(), Fallback: true}, nil)
	e := newEcho()
	h := NewScholarshipHandler(svc)
	e.GET("/", h.Top)
	e.GET("/all-data", h.All)

	rec := serve(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderDataSource))
	var top []model.Scholarship
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	assert.Len(t, top, 1)

	rec = serve(e, http.MethodGet, "/all-data", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fallback", rec.Header().Get(HeaderDataSource))
}

func TestScholarshipHandler_EmptyListingIsArray(t *testing.T) {
	svc := new(MockScholarshipService)
	svc.On("Top", mock.Anything).Return(&service.Listing{Scholarships: []model.Scholarship{}}, nil)
	e := newEcho()
	e.GET("/", NewScholarshipHandler(svc).Top)

	rec := serve(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestScholarshipHandler_Detail(t *testing.T) {
	id := primitive.NewObjectID()
	svc := new(MockScholarshipService)
	svc.On("Detail", mock.Anything, "not-an-id").Return(nil, apperrors.ErrInvalidID)
	svc.On("Detail", mock.Anything, id.Hex()).Return(nil, nil)
	e := newEcho()
	e.GET("/scholarship/:id", NewScholarshipHandler(svc).Detail)

	rec := serve(e, http.MethodGet, "/scholarship/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodGet, "/scholarship/"+id.Hex(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", strings.TrimSpace(rec.Body.String()))
}

func TestScholarshipHandler_Create(t *testing.T) {
	id := primitive.NewObjectID()
	svc := new(MockScholarshipService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Scholarship) bool {
		return s.ScholarshipName == "Alpha" && s.ApplicationFees == 25
	})).Return(id, nil)
	e := newEcho()
	e.POST("/add-scholarship", NewScholarshipHandler(svc).Create)

	rec := serve(e, http.MethodPost, "/add-scholarship", `{"scholarshipName":"Alpha","universityName":"Oxford","applicationFees":25}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, id.Hex(), body["insertedId"])
	assert.Equal(t, true, body["acknowledged"])

	rec = serve(e, http.MethodPost, "/add-scholarship", `{"universityName":"Oxford"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "Create", 1)
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockPaymentService)
		wantStatus int
		wantSecret string
		wantCode   string
	}{
		{
			name: "numeric price",
			body: `{"price":19.995}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.RequireFromString("19.995"))
				})).Return("pi_1_secret_2", nil)
			},
			wantStatus: http.StatusOK,
			wantSecret: "pi_1_secret_2",
		},
		{
			name: "string price",
			body: `{"price":"10"}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.NewFromInt(10))
				})).Return("pi_3_secret_4", nil)
			},
			wantStatus: http.StatusOK,
			wantSecret: "pi_3_secret_4",
		},
		{
			name:       "non-numeric price",
			body:       `{"price":"ten"}`,
			setupMock:  func(m *MockPaymentService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_AMOUNT",
		},
		{
			name: "provider not configured",
			body: `{"price":10}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return("", apperrors.ErrPaymentUnavailable)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PAYMENT_UNAVAILABLE",
		},
		{
			name: "provider rejection",
			body: `{"price":0.1}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return("", &apperrors.PaymentRejectedError{StatusCode: 400, Message: "Amount must be at least $0.50 usd"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PAYMENT_REJECTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPaymentService)
			tt.setupMock(svc)
			e := newEcho()
			e.POST("/create-payment-intent", NewPaymentHandler(svc).CreatePaymentIntent)

			rec := serve(e, http.MethodPost, "/create-payment-intent", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			if tt.wantSecret != "" {
				assert.Equal(t, tt.wantSecret, body["clientSecret"])
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
			svc.AssertExpectations(t)
		})
	}
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler(t *testing.T) {
	e := newEcho()
	h := NewHealthHandler(fixedStatus{Connected: false, Attempts: 2, LastError: "no reachable servers"}, failingPinger{},
		DiagConfig{Env: "development", PaymentKeySet: true, CacheConfigured: true}, time.Now())
	e.GET("/health", h.Health)
	e.GET("/diag", h.Diag)

	rec := serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, false, body["dbConnected"])

	rec = serve(e, http.MethodGet, "/diag", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	database := body["database"].(map[string]interface{})
	assert.Equal(t, "no reachable servers", database["lastError"])
	assert.Equal(t, float64(2), database["attempts"])
	assert.Contains(t, body["cache"], "unreachable")
	config := body["config"].(map[string]interface{})
	assert.Equal(t, true, config["paymentKeySet"])
	assert.NotContains(t, rec.Body.String(), "sk_")
}
