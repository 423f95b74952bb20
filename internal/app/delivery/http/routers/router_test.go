package routers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts/mocks"
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testToken       = "token-1"
	testSessionID   = "session-1"
	testSessionData = `{"userId":"doc-1","userType":"doctor"}`
)

type routerFixture struct {
	router       *chi.Mux
	auth         *mocks.AuthUsecase
	availability *mocks.AvailabilityUsecase
	proposals    *mocks.ProposalUsecase
	contracts    *mocks.ShiftContractUsecase
	profiles     *mocks.ProfileUsecase
	verification *mocks.VerificationService
	dashboard    *mocks.DashboardUsecase
}

func newRouterFixture(t *testing.T, authPerMinute int) *routerFixture {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{App: config.App{
		EndpointPrefix:                  "api",
		Version:                         "v1",
		RequestTimeoutInSeconds:         5,
		RequestBodyLimitInMegabyte:      5,
		AuthRateLimitPerMinute:          authPerMinute,
		AuthRateLimitBlockTimeInMinutes: 1,
	}}

	tokens := new(mocks.TokenManager)
	tokens.On("ParseSessionToken", testToken).Return(testSessionID, nil)
	tokens.On("ParseSessionToken", mock.Anything).Return("", exceptions.ErrTokenInvalidOrExpired(nil))
	sessions := new(mocks.SessionService)
	sessions.On("GetSessionData", mock.Anything, testSessionID).Return(testSessionData, nil)

	f := &routerFixture{
		router:       chi.NewRouter(),
		auth:         new(mocks.AuthUsecase),
		availability: new(mocks.AvailabilityUsecase),
		proposals:    new(mocks.ProposalUsecase),
		contracts:    new(mocks.ShiftContractUsecase),
		profiles:     new(mocks.ProfileUsecase),
		verification: new(mocks.VerificationService),
		dashboard:    new(mocks.DashboardUsecase),
	}

	SetupRoutes(f.router, internalConfig, middlewares.NewMiddlewares(logger, sessions, tokens, internalConfig), &Controllers{
		Auth:         controllers.NewAuthController(logger, f.auth, internalConfig),
		Availability: controllers.NewAvailabilityController(logger, f.availability, internalConfig),
		Proposal:     controllers.NewProposalController(logger, f.proposals, internalConfig),
		Contract:     controllers.NewContractController(logger, f.contracts, internalConfig),
		Profile:      controllers.NewProfileController(logger, f.profiles, f.verification, internalConfig),
		Dashboard:    controllers.NewDashboardController(logger, f.dashboard, internalConfig),
	})
	return f
}

func (f *routerFixture) do(method, path string, body io.Reader, authenticated bool, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1"+path, body)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+testToken)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Login with valid credentials", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.auth.On("Login", mock.Anything, mock.MatchedBy(func(r *requests.LoginUser) bool {
			return r.Email == "ana@example.com"
		})).Return(&responses.LoginUser{Token: "jwt", ExpiresAt: time.Now()}, nil)

		rr := f.do(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{
			"email":    "  Ana@Example.com ",
			"password": "secret",
		}), false)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeResponse(t, rr)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Register rejects invalid input before the usecase", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodPost, "/auth/register", jsonBody(t, map[string]string{
			"name":            "Ana",
			"email":           "not-an-email",
			"password":        "Secret!123",
			"retype_password": "Secret!123",
			"user_type":       "doctor",
		}), false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodPost, "/auth/login", strings.NewReader("{"), false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Me requires a session", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodGet, "/auth/me", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		f.auth.On("Me", mock.Anything, testSessionData).Return(&responses.User{ID: "doc-1"}, nil)
		rr = f.do(http.MethodGet, "/auth/me", nil, true)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Credential endpoints are rate limited per IP", func(t *testing.T) {
		f := newRouterFixture(t, 2)
		f.auth.On("ForgotPassword", mock.Anything, mock.Anything).Return(nil)

		for i := 0; i < 2; i++ {
			rr := f.do(http.MethodPost, "/auth/forgot-password", jsonBody(t, map[string]string{"email": "ana@example.com"}), false)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
		rr := f.do(http.MethodPost, "/auth/forgot-password", jsonBody(t, map[string]string{"email": "ana@example.com"}), false)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})
}

func TestAvailabilityRoutes(t *testing.T) {
	submit := map[string]interface{}{
		"dates":       []string{"2025-06-10", "2025-06-11"},
		"startTime":   "08:00",
		"endTime":     "12:00",
		"specialties": []string{"Cardiologia"},
	}

	t.Run("Every date conflicting answers 409 with the skipped list", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.availability.On("SubmitAvailability", mock.Anything, mock.MatchedBy(func(r *requests.SubmitAvailability) bool {
			return r.SessionData == testSessionData && len(r.Dates) == 2
		})).Return(&responses.SubmitAvailability{
			Created: []models.TimeSlot{},
			Skipped: []responses.SkippedDate{{Date: "2025-06-10", Reason: "conflict"}, {Date: "2025-06-11", Reason: "conflict"}},
		}, nil)

		rr := f.do(http.MethodPost, "/availability", jsonBody(t, submit), true)

		assert.Equal(t, http.StatusConflict, rr.Code)
		body := decodeResponse(t, rr)
		assert.Equal(t, false, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["skipped"], 2)
	})

	t.Run("Partial success answers 201", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.availability.On("SubmitAvailability", mock.Anything, mock.Anything).Return(&responses.SubmitAvailability{
			Created: []models.TimeSlot{{ID: "slot-1", Date: "2025-06-11"}},
			Skipped: []responses.SkippedDate{{Date: "2025-06-10", Reason: "conflict"}},
		}, nil)

		rr := f.do(http.MethodPost, "/availability", jsonBody(t, submit), true)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, constvars.SubmitAvailabilityPartialMessage, decodeResponse(t, rr)["message"])
	})

	t.Run("Slot id comes from the path", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.availability.On("DeleteSlot", mock.Anything, &requests.SlotByID{SessionData: testSessionData, SlotID: "slot-9"}).Return(nil)

		rr := f.do(http.MethodDelete, "/availability/slot-9", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestProposalRoutes(t *testing.T) {
	t.Run("Hidden or missing proposal answers 404", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.proposals.On("GetProposal", mock.Anything, &requests.ProposalByID{SessionData: testSessionData, ProposalID: "p-1"}).Return(nil, nil)

		rr := f.do(http.MethodGet, "/proposals/p-1", nil, true)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Unknown status filter is rejected", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodGet, "/proposals?status=archived", nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.proposals.AssertNotCalled(t, "ListProposals", mock.Anything, mock.Anything)
	})

	t.Run("Matching is routed before the id route", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.proposals.On("ListMatchingProposals", mock.Anything, &requests.ListMatchingProposals{SessionData: testSessionData, Specialty: "Pediatria"}).
			Return([]models.Proposal{}, nil)

		rr := f.do(http.MethodGet, "/proposals/matching?specialty=Pediatria", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Accepting a proposal that is no longer pending answers 409", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.proposals.On("AcceptProposal", mock.Anything, mock.Anything).Return(nil, exceptions.ErrProposalNotPending(nil, "p-1"))

		rr := f.do(http.MethodPost, "/proposals/p-1/accept", nil, true)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestContractRoutes(t *testing.T) {
	t.Run("Check-in forwards frame, location and contract id", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.contracts.On("CheckIn", mock.Anything, mock.MatchedBy(func(r *requests.AttendanceVerification) bool {
			return r.ContractID == "c-1" &&
				r.SessionData == testSessionData &&
				r.Frame == "data:image/jpeg;base64,AAAA" &&
				r.Location != nil && r.Location.Latitude == -23.5
		})).Return(&responses.Contract{}, nil)

		rr := f.do(http.MethodPost, "/contracts/c-1/check-in", jsonBody(t, map[string]interface{}{
			"frame":    "data:image/jpeg;base64,AAAA",
			"location": map[string]interface{}{"latitude": -23.5, "longitude": -46.6, "accuracy": 10},
		}), true)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.CheckInSuccessMessage, decodeResponse(t, rr)["message"])
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodPost, "/contracts/c-1/check-out", jsonBody(t, map[string]interface{}{
			"frame":    "data:image/jpeg;base64,AAAA",
			"location": map[string]interface{}{"latitude": 123.0, "longitude": -46.6},
		}), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.contracts.AssertNotCalled(t, "CheckOut", mock.Anything, mock.Anything)
	})

	t.Run("Failed verification keeps its status code", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.contracts.On("CheckIn", mock.Anything, mock.Anything).Return(nil, exceptions.ErrOutsideGeofence(nil, 900, 300))

		rr := f.do(http.MethodPost, "/contracts/c-1/check-in", jsonBody(t, map[string]interface{}{"frame": "x"}), true)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestProfileRoutes(t *testing.T) {
	t.Run("Document upload reads the multipart file", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.profiles.On("UploadDocument", mock.Anything, mock.MatchedBy(func(r *requests.UploadFile) bool {
			content, _ := io.ReadAll(r.File)
			return r.DocumentKey == "cpfFile" &&
				r.FileName == "cpf.pdf" &&
				r.ContentType == constvars.MIMEApplicationPDF &&
				r.Size == int64(len("%PDF-1.4")) &&
				string(content) == "%PDF-1.4"
		})).Return(&models.DocumentRef{ObjectName: "documents/doc-1/cpfFile"}, nil)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="cpf.pdf"`)
		header.Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		rr := f.do(http.MethodPost, "/profile/documents/cpfFile", &buf, true, constvars.HeaderContentType, writer.FormDataContentType())

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Finalize is not captured by the document key route", func(t *testing.T) {
		f := newRouterFixture(t, 0)
		f.profiles.On("FinalizeDocuments", mock.Anything, testSessionData).
			Return(nil, exceptions.ErrMandatoryDocumentsMissing(nil, []string{"cpfFile"}))

		rr := f.do(http.MethodPost, "/profile/documents/finalize", nil, true)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		f.profiles.AssertNotCalled(t, "UploadDocument", mock.Anything, mock.Anything)
	})

	t.Run("Face enrollment requires a frame", func(t *testing.T) {
		f := newRouterFixture(t, 0)

		rr := f.do(http.MethodPost, "/profile/face", jsonBody(t, map[string]string{}), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.verification.AssertNotCalled(t, "EnrollFace", mock.Anything, mock.Anything)
	})
}

func TestDashboardRoute(t *testing.T) {
	f := newRouterFixture(t, 0)
	f.dashboard.On("GetSummary", mock.Anything, testSessionData).Return(&responses.DashboardSummary{AvailableDays: 3}, nil)

	rr := f.do(http.MethodGet, "/dashboard", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = f.do(http.MethodGet, "/dashboard", nil, true)
	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeResponse(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["availableDays"])
}
