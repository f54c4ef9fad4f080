package services

import (
	"context"

	"github.com/AsbestosServicesHampshire/ash-backend/errors"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
)

// EnquiryService drives delivery of the two notification emails for a
// validated enquiry. The sends are sequential and both awaited; a failure on
// the business notification short-circuits, so the confirmation is never
// attempted. There is no retry and no transactional tie between the two sends:
// if the first succeeds and the second fails, the business has been notified
// while the customer sees an error. That window is accepted; a client retry
// after it may produce a duplicate business notification.
type EnquiryService struct {
	emailSvc types.EmailService
}

func NewEnquiryService(emailSvc types.EmailService) *EnquiryService {
	return &EnquiryService{emailSvc: emailSvc}
}

// Process dispatches the business notification followed by the customer
// confirmation. Any dispatch failure is wrapped so only a generic message
// reaches the client.
func (s *EnquiryService) Process(ctx context.Context, enquiry *types.Enquiry) error {
	log := logger.GetLogger()

	log.Infow("Processing enquiry",
		"email", logger.MaskEmail(enquiry.Email),
		"phone", logger.MaskPhone(enquiry.Phone),
		"service", enquiry.ServiceLabel(),
		"attachments", len(enquiry.Attachments))

	if err := s.emailSvc.SendBusinessNotification(ctx, enquiry); err != nil {
		return errors.EmailDispatchFailed(err)
	}

	if err := s.emailSvc.SendCustomerConfirmation(ctx, enquiry); err != nil {
		return errors.EmailDispatchFailed(err)
	}

	return nil
}
