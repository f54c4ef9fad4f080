package types

// NotSpecified is the display label used in notification emails for optional
// fields the customer left blank.
const NotSpecified = "Not specified"

// Attachment is a file submitted with an enquiry, read fully into memory for
// the lifetime of the request.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// Enquiry is a single validated contact-form submission. It exists only for
// the duration of one intake request; nothing is persisted.
type Enquiry struct {
	Name    string
	Phone   string
	Email   string
	Message string

	// Optional fields. Empty means the customer did not specify.
	Service       string
	Location      string
	PropertyType  string
	Bedrooms      string
	Urgency       string
	PreferredDate string

	// Attachments in the order they were staged, at most the configured maximum.
	Attachments []Attachment
}

// ServiceLabel returns the service for display, or "Not specified".
func (e *Enquiry) ServiceLabel() string {
	return orNotSpecified(e.Service)
}

// LocationLabel returns the location for display, or "Not specified".
func (e *Enquiry) LocationLabel() string {
	return orNotSpecified(e.Location)
}

// PropertyTypeLabel returns the property type for display, or "Not specified".
func (e *Enquiry) PropertyTypeLabel() string {
	return orNotSpecified(e.PropertyType)
}

// BedroomsLabel returns the bedroom count for display, or "Not specified".
func (e *Enquiry) BedroomsLabel() string {
	return orNotSpecified(e.Bedrooms)
}

// UrgencyLabel returns the urgency for display, or "Not specified".
func (e *Enquiry) UrgencyLabel() string {
	return orNotSpecified(e.Urgency)
}

// PreferredDateLabel returns the preferred date for display, or "Not specified".
func (e *Enquiry) PreferredDateLabel() string {
	return orNotSpecified(e.PreferredDate)
}

// AttachmentNames returns the staged filenames in order.
func (e *Enquiry) AttachmentNames() []string {
	names := make([]string, 0, len(e.Attachments))
	for _, a := range e.Attachments {
		names = append(names, a.Filename)
	}
	return names
}

func orNotSpecified(s string) string {
	if s == "" {
		return NotSpecified
	}
	return s
}
