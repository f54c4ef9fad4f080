package types

import "context"

// EmailService dispatches the two enquiry notification emails. Both sends are
// awaited; neither is retried.
type EmailService interface {
	// SendBusinessNotification emails the full enquiry, with attachments, to the
	// business inbox. Reply-To is set to the customer's address.
	SendBusinessNotification(ctx context.Context, enquiry *Enquiry) error

	// SendCustomerConfirmation emails an acknowledgement to the customer.
	// It carries no attachments.
	SendCustomerConfirmation(ctx context.Context, enquiry *Enquiry) error
}
