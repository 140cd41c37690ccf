package seeder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/course-api/internal/adapter"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/sethvargo/go-retry"
)

const (
	pingAttempts = 10
	pingInterval = 500 * time.Millisecond
)

// Report counts what a run created and what already existed.
type Report struct {
	AccountsCreated int
	AccountsSkipped int
	CoursesCreated  int
}

type Seeder struct {
	api adapter.ServerAdapter

	// newBackoff builds a fresh policy per run; go-retry backoffs keep
	// their attempt count.
	newBackoff func() retry.Backoff

	logger *logger.Logger
}

func NewSeeder(api adapter.ServerAdapter, logger *logger.Logger) *Seeder {
	return &Seeder{
		api: api,
		newBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(pingAttempts, retry.NewConstant(pingInterval))
		},
		logger: logger,
	}
}

// Run checks data, waits for the API and replays data. Accounts whose email
// is already registered are skipped, so a rerun only adds courses.
func (s *Seeder) Run(ctx context.Context, data Data) (Report, error) {
	var report Report

	if err := data.check(); err != nil {
		return report, err
	}

	if err := s.waitForAPI(ctx); err != nil {
		return report, err
	}

	for _, user := range data.Users {
		err := s.api.CreateAccount(ctx, user)
		switch {
		case err == nil:
			report.AccountsCreated++
			s.logger.Info().Str("email", *user.EmailAddress).Msg("account created")
		case isEmailTaken(err):
			report.AccountsSkipped++
			s.logger.Warn().Str("email", *user.EmailAddress).Msg("account already exists, skipping")
		default:
			return report, fmt.Errorf("creating account %s: %w", *user.EmailAddress, err)
		}
	}

	for _, course := range data.Courses {
		owner := data.owner(course)
		s.api.SetCredentials(*owner.EmailAddress, *owner.Password)

		id, err := s.api.CreateCourse(ctx, course.CourseRequest)
		if err != nil {
			return report, fmt.Errorf("creating course for %s: %w", *owner.EmailAddress, err)
		}

		report.CoursesCreated++
		s.logger.Info().Int64("course_id", id).Str("owner", *owner.EmailAddress).Msg("course created")
	}

	return report, nil
}

// waitForAPI pings the API until it answers or the attempts run out.
func (s *Seeder) waitForAPI(ctx context.Context) error {
	err := retry.Do(ctx, s.newBackoff(), func(ctx context.Context) error {
		if err := s.api.Ping(ctx); err != nil {
			s.logger.Debug().Err(err).Msg("course API not ready")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAPIUnavailable, err)
	}
	return nil
}

func isEmailTaken(err error) bool {
	var apiErr *adapter.APIError
	return errors.As(err, &apiErr) &&
		errors.Is(err, adapter.ErrBadRequest) &&
		slices.Contains(apiErr.Messages, validators.MsgEmailTaken)
}
