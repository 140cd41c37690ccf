package adapter

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	email    string
	password string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetCredentials(email, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.email = email
	h.password = password
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateAccount(ctx context.Context, req models.CreateAccountRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/users")
	if err != nil {
		return fmt.Errorf("create account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CurrentAccount(ctx context.Context) (models.AccountSummary, error) {
	var account models.AccountSummary

	resp, err := h.authedRequest(ctx).
		SetResult(&account).
		Get("/users")
	if err != nil {
		return models.AccountSummary{}, fmt.Errorf("current account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountSummary{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

func (h *httpServerAdapter) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	var course models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		SetResult(&course).
		Get("/courses/{id}")
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func (h *httpServerAdapter) CreateCourse(ctx context.Context, req models.CourseRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/courses")
	if err != nil {
		return 0, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return courseIDFromLocation(resp.Header().Get("Location"))
}

func (h *httpServerAdapter) UpdateCourse(ctx context.Context, courseID int64, req models.CourseRequest) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		SetBody(req).
		Put("/courses/{id}")
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteCourse(ctx context.Context, courseID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		Delete("/courses/{id}")
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.email != "" || h.password != "" {
		req.SetBasicAuth(h.email, h.password)
	}
	return req
}

// courseIDFromLocation parses "/courses/{id}".
func courseIDFromLocation(location string) (int64, error) {
	dir, last := path.Split(location)
	if dir != "/courses/" {
		return 0, fmt.Errorf("%w: %q", ErrMissingLocation, location)
	}

	id, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMissingLocation, location)
	}
	return id, nil
}
