// Package contact validates contact form submissions and hands them to a
// Sender.
package contact

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Submission is a contact form post.
type Submission struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Subject string `form:"subject" json:"subject" validate:"max=200"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}

var validate = validator.New()

// Normalize trims surrounding whitespace from every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks required fields, lengths and the email format.
func (s *Submission) Validate() error {
	return validate.Struct(s)
}

// FieldErrors maps each invalid field to a message fit for the form.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = "enter a valid email address"
		case "max":
			out[field] = field + " is too long"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// Sender delivers an accepted submission.
type Sender interface {
	Send(ctx context.Context, ref string, s Submission) error
}

// ErrInvalid wraps validation failures returned by Service.Submit.
var ErrInvalid = errors.New("invalid submission")

// Service validates submissions and sends them.
type Service struct {
	sender Sender
}

// NewService returns a Service that delivers through sender.
func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit validates s, assigns it a reference ID and sends it. Validation
// failures are returned as *InvalidError, which matches ErrInvalid.
func (svc *Service) Submit(ctx context.Context, s Submission) (string, error) {
	s.Normalize()
	if err := s.Validate(); err != nil {
		return "", &InvalidError{Fields: FieldErrors(err), err: err}
	}

	ref := uuid.NewString()
	log := logger.G(ctx).WithField("ref", ref)

	if err := svc.sender.Send(ctx, ref, s); err != nil {
		log.WithError(err).Error("failed to send contact message")
		return "", errors.Wrap(err, "failed to send contact message")
	}

	log.WithField("from", s.Email).Info("contact message sent")
	return ref, nil
}

// InvalidError carries per-field messages for a rejected submission.
type InvalidError struct {
	Fields map[string]string
	err    error
}

func (e *InvalidError) Error() string {
	return ErrInvalid.Error() + ": " + e.err.Error()
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

func (e *InvalidError) Unwrap() error {
	return e.err
}
