package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/AsbestosServicesHampshire/ash-backend/config"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends enquiry notification emails through Resend.
type EmailService struct {
	email    *config.EmailConfig
	business *config.BusinessConfig
	client   *resend.Client
	metrics  *EmailMetrics
}

func NewEmailService(emailCfg *config.EmailConfig, businessCfg *config.BusinessConfig) *EmailService {
	return NewEmailServiceWithRegistry(emailCfg, businessCfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(emailCfg *config.EmailConfig, businessCfg *config.BusinessConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", emailCfg.FromAddress, "business_inbox", logger.MaskEmail(businessCfg.InboxAddress))
	client := resend.NewClient(emailCfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ash_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ash_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ash_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		email:    emailCfg,
		business: businessCfg,
		client:   client,
		metrics:  metrics,
	}
}

// SendBusinessNotification emails the full enquiry to the business inbox with
// every extracted attachment. Reply-To is the customer's address so a reply
// goes straight back to them.
func (s *EmailService) SendBusinessNotification(ctx context.Context, enquiry *types.Enquiry) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	html, err := s.renderTemplate("business_notification", businessNotificationTemplate, enquiry)
	if err != nil {
		s.metrics.errorCount.Inc()
		return err
	}

	attachments := make([]*resend.Attachment, 0, len(enquiry.Attachments))
	for _, a := range enquiry.Attachments {
		attachments = append(attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	params := &resend.SendEmailRequest{
		From:        fmt.Sprintf("%s <%s>", s.email.FromName, s.email.FromAddress),
		To:          []string{s.business.InboxAddress},
		ReplyTo:     enquiry.Email,
		Subject:     fmt.Sprintf("New Enquiry from %s — %s", enquiry.Name, enquiry.ServiceLabel()),
		Html:        html,
		Attachments: attachments,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send business notification",
			"error", err,
			"reply_to", logger.MaskEmail(enquiry.Email))
		return fmt.Errorf("business notification send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Business notification sent",
		"reply_to", logger.MaskEmail(enquiry.Email),
		"attachments", len(enquiry.Attachments))

	return nil
}

// SendCustomerConfirmation emails an acknowledgement to the customer. It
// carries no attachments and no Reply-To override.
func (s *EmailService) SendCustomerConfirmation(ctx context.Context, enquiry *types.Enquiry) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	html, err := s.renderTemplate("customer_confirmation", customerConfirmationTemplate, enquiry)
	if err != nil {
		s.metrics.errorCount.Inc()
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.email.FromName, s.email.FromAddress),
		To:      []string{enquiry.Email},
		Subject: fmt.Sprintf("We've received your enquiry — %s", s.business.SiteName),
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send customer confirmation",
			"error", err,
			"to", logger.MaskEmail(enquiry.Email))
		return fmt.Errorf("customer confirmation send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Customer confirmation sent", "to", logger.MaskEmail(enquiry.Email))

	return nil
}

// enquiryEmailData is the template context shared by both email bodies.
type enquiryEmailData struct {
	SiteName         string
	SupportPhone     string
	SupportPhoneHref string
	ContactEmail     string

	Name          string
	Phone         string
	Email         string
	Message       string
	Service       string
	Location      string
	PropertyType  string
	Bedrooms      string
	Urgency       string
	PreferredDate string

	FileList        string
	AttachmentCount int
}

func (s *EmailService) renderTemplate(name, text string, enquiry *types.Enquiry) (string, error) {
	log := logger.GetLogger()

	fileList := "None"
	if len(enquiry.Attachments) > 0 {
		fileList = ""
		for i, n := range enquiry.AttachmentNames() {
			if i > 0 {
				fileList += ", "
			}
			fileList += n
		}
	}

	data := enquiryEmailData{
		SiteName:         s.business.SiteName,
		SupportPhone:     s.business.SupportPhone,
		SupportPhoneHref: s.business.SupportPhoneHref,
		ContactEmail:     s.business.ContactEmail,
		Name:             enquiry.Name,
		Phone:            enquiry.Phone,
		Email:            enquiry.Email,
		Message:          enquiry.Message,
		Service:          enquiry.ServiceLabel(),
		Location:         enquiry.LocationLabel(),
		PropertyType:     enquiry.PropertyTypeLabel(),
		Bedrooms:         enquiry.BedroomsLabel(),
		Urgency:          enquiry.UrgencyLabel(),
		PreferredDate:    enquiry.PreferredDateLabel(),
		FileList:         fileList,
		AttachmentCount:  len(enquiry.Attachments),
	}

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		log.Errorw("Failed to parse email template", "template", name, "error", err)
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, data); err != nil {
		log.Errorw("Failed to execute email template", "template", name, "error", err)
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return htmlContent.String(), nil
}

// Template constants
const businessNotificationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1e3a5f; color: white; padding: 24px; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 20px;">New Enquiry Received</h1>
    <p style="margin: 8px 0 0; opacity: 0.8; font-size: 14px;">{{.SiteName}}</p>
  </div>
  <div style="border: 1px solid #e5e7eb; border-top: none; padding: 24px; border-radius: 0 0 8px 8px;">
    <table style="width: 100%; border-collapse: collapse;">
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151; width: 140px;">Name:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.Name}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Phone:</td>
        <td style="padding: 8px 0; color: #1f2937;"><a href="tel:{{.Phone}}" style="color: #1e3a5f;">{{.Phone}}</a></td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Email:</td>
        <td style="padding: 8px 0; color: #1f2937;"><a href="mailto:{{.Email}}" style="color: #1e3a5f;">{{.Email}}</a></td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Service:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.Service}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Location:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.Location}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Property type:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.PropertyType}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Bedrooms:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.Bedrooms}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Urgency:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.Urgency}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Preferred date:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.PreferredDate}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #374151;">Files:</td>
        <td style="padding: 8px 0; color: #1f2937;">{{.FileList}}</td>
      </tr>
    </table>
    <div style="margin-top: 16px; padding-top: 16px; border-top: 1px solid #e5e7eb;">
      <p style="font-weight: bold; color: #374151; margin: 0 0 8px;">Message:</p>
      <p style="color: #1f2937; line-height: 1.6; margin: 0; white-space: pre-wrap;">{{.Message}}</p>
    </div>
  </div>
</div>`

const customerConfirmationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1e3a5f; color: white; padding: 24px; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 20px;">{{.SiteName}}</h1>
    <p style="margin: 8px 0 0; opacity: 0.8; font-size: 14px;">Enquiry Confirmation</p>
  </div>
  <div style="border: 1px solid #e5e7eb; border-top: none; padding: 24px; border-radius: 0 0 8px 8px;">
    <p style="color: #1f2937; line-height: 1.6;">Dear {{.Name}},</p>
    <p style="color: #1f2937; line-height: 1.6;">
      Thank you for contacting {{.SiteName}}. We have received your enquiry
      regarding <strong>{{.Service}}</strong> and will be in touch shortly.
    </p>
    <p style="color: #1f2937; line-height: 1.6;">
      We aim to respond to all enquiries within one working day. If your
      matter is urgent, please call us directly on
      <a href="{{.SupportPhoneHref}}" style="color: #1e3a5f; font-weight: bold;">{{.SupportPhone}}</a>.
    </p>
    <div style="margin-top: 16px; padding: 16px; background: #f9fafb; border-radius: 8px;">
      <p style="font-weight: bold; color: #374151; margin: 0 0 8px; font-size: 14px;">Your enquiry summary:</p>
      <p style="color: #6b7280; font-size: 14px; margin: 0; line-height: 1.6;">
        Service: {{.Service}}<br/>
        Location: {{.Location}}<br/>
        Files attached: {{.AttachmentCount}}
      </p>
    </div>
    <p style="color: #6b7280; font-size: 13px; margin-top: 24px; line-height: 1.5;">
      This is an automated confirmation. Please do not reply to this email.
      For further correspondence, email us at {{.ContactEmail}} or call {{.SupportPhone}}.
    </p>
  </div>
</div>`
