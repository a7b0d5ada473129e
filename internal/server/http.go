package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/core/port"
	"github.com/wardrockay/mail-draft-creator/internal/handler"
)

type HTTPServer struct {
	echo         *echo.Echo
	draftService port.DraftService
}

// ErrorResponse is the uniform error body. Code is the stable
// machine-readable error code; Message never carries internals.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewHTTPServer(draftService port.DraftService) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.HTTPErrorHandler = errorHandler

	server := &HTTPServer{
		echo:         e,
		draftService: draftService,
	}

	draftHandler := handler.NewDraftHTTPHandler(draftService, validator.New())

	e.GET("/health", server.healthCheck)
	e.POST("/", draftHandler.CreateEmail())
	e.POST("/send-draft", draftHandler.SendDraft())
	e.POST("/send-followup", draftHandler.SendFollowup())
	e.POST("/resend-to-another", draftHandler.ResendToAnother())
	e.GET("/draft/:id", draftHandler.GetDraft())
	e.GET("/draft/:id/thread", draftHandler.DraftThread())
	e.GET("/drafts", draftHandler.ListDrafts())

	return server
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
			} else {
				entry.Info("request")
			}
			return nil
		},
	})
}

// errorHandler maps typed domain errors to HTTP statuses and the
// uniform error body. Unknown errors become a generic 500 so no
// internal detail leaks to callers.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := domain.CodeInternal
	message := "internal server error"

	var (
		validationErr *domain.ValidationError
		sentErr       *domain.AlreadySentError
		notFoundErr   *domain.NotFoundError
		credErr       *domain.CredentialError
		gmailErr      *domain.GmailError
		storageErr    *domain.StorageError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		status, code, message = http.StatusBadRequest, validationErr.Code(), validationErr.Error()
	case errors.As(err, &sentErr):
		status, code, message = http.StatusBadRequest, sentErr.Code(), sentErr.Error()
	case errors.As(err, &notFoundErr):
		status, code, message = http.StatusNotFound, notFoundErr.Code(), notFoundErr.Error()
	case errors.As(err, &gmailErr) && gmailErr.Kind == domain.ThreadNotFound:
		status, code, message = http.StatusNotFound, gmailErr.Code(), "gmail thread not found"
	case errors.As(err, &credErr):
		status, code, message = http.StatusBadGateway, credErr.Code(), "gmail authentication failed"
	case errors.As(err, &gmailErr):
		status, code, message = http.StatusBadGateway, gmailErr.Code(), "gmail send failed"
	case errors.As(err, &storageErr):
		status, code, message = http.StatusInternalServerError, storageErr.Code(), "storage failure"
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status < http.StatusInternalServerError {
			code = domain.CodeValidation
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}

	if jsonErr := c.JSON(status, ErrorResponse{
		Error:   true,
		Code:    string(code),
		Message: message,
	}); jsonErr != nil {
		log.WithError(jsonErr).Error("Failed to write error response")
	}
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "mail-draft-creator",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

// Echo exposes the router for tests.
func (s *HTTPServer) Echo() *echo.Echo {
	return s.echo
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
