package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "group-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

func TestErrorHandler(t *testing.T) {
	suite.Run(t, new(ErrorHandlerSuite))
}

type ErrorHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	reg     *prometheus.Registry
	handler *ErrorHandler
}

func (s *ErrorHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.reg = prometheus.NewRegistry()
	s.handler = NewErrorHandler(discardLogger(), s.reg)
}

func (s *ErrorHandlerSuite) handle(method string, err error, traceID string) (*httptest.ResponseRecorder, apierrors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(method, "/", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	s.handler.Handle(err, c)

	var body apierrors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ErrorHandlerSuite) TestHTTPErrorKeepsItsMessage() {
	rec, body := s.handle(http.MethodGet, echo.NewHTTPError(http.StatusNotFound, "no such route"), "trace-1")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("no such route", body.Error.Message)
	s.Equal("trace-1", body.Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerSuite) TestHTTPErrorWithoutStringMessageUsesCatalog() {
	_, body := s.handle(http.MethodGet, echo.NewHTTPError(http.StatusTooManyRequests, map[string]int{"retry": 1}), "t")

	s.Equal("SYSTEM_006", body.Error.Code)
	s.Equal(apierrors.SystemRateLimitExceeded.Message(), body.Error.Message)
}

func (s *ErrorHandlerSuite) TestUnknownErrorsAreHidden() {
	rec, body := s.handle(http.MethodGet, errors.New(`pq: relation "groups" does not exist`), "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("unknown", body.Error.TraceID)
	s.NotContains(rec.Body.String(), "relation")
}

func (s *ErrorHandlerSuite) TestValidationErrorsListFields() {
	type payload struct {
		Name  string `validate:"required"`
		Title string `validate:"min=3"`
		Count int    `validate:"max=2"`
	}
	err := validator.New().Struct(payload{Count: 5})
	s.Require().Error(err)

	rec, body := s.handle(http.MethodPost, fmt.Errorf("binding: %w", err), "t")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{
		"Count: must be at most 2",
		"Name: is required",
		"Title: must be at least 3 characters long",
	}, body.Error.Details)
}

func (s *ErrorHandlerSuite) TestHeadRequestsGetNoBody() {
	rec, _ := s.handle(http.MethodHead, errors.New("boom"), "t")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Zero(rec.Body.Len())
}

func (s *ErrorHandlerSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "ok"))

	s.handler.Handle(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
	s.Zero(testutil.CollectAndCount(s.handler.errorsTotal))
}

func (s *ErrorHandlerSuite) TestErrorsAreCounted() {
	for i := 0; i < 3; i++ {
		s.handle(http.MethodGet, echo.ErrTooManyRequests, "t")
	}
	s.handle(http.MethodGet, errors.New("boom"), "t")

	s.Equal(3.0, testutil.ToFloat64(s.handler.errorsTotal.WithLabelValues("SYSTEM_006", "", "429")))
	s.Equal(1.0, testutil.ToFloat64(s.handler.errorsTotal.WithLabelValues("SYSTEM_001", "", "500")))
}

func (s *ErrorHandlerSuite) TestCodeForStatus() {
	cases := map[int]string{
		http.StatusBadRequest:          "VALIDATION_001",
		http.StatusMethodNotAllowed:    "VALIDATION_001",
		http.StatusUnauthorized:        "AUTH_002",
		http.StatusForbidden:           "AUTH_005",
		http.StatusNotFound:            "SYSTEM_007",
		http.StatusTooManyRequests:     "SYSTEM_006",
		http.StatusInternalServerError: "SYSTEM_001",
		http.StatusServiceUnavailable:  "SYSTEM_003",
		http.StatusTeapot:              "SYSTEM_005",
	}
	for status, want := range cases {
		s.Equal(want, string(codeForStatus(status)), status)
	}
}
