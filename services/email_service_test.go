package services

import (
	"context"
	"testing"

	"github.com/AsbestosServicesHampshire/ash-backend/config"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

// Mock Resend client
type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Update(params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) UpdateWithContext(ctx context.Context, params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Cancel(id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) CancelWithContext(ctx context.Context, id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Get(id string) (*resend.Email, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

func (m *mockEmailsService) GetWithContext(ctx context.Context, id string) (*resend.Email, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

// Mock registry that doesn't actually register metrics
type mockRegistry struct{}

func (m *mockRegistry) Register(c prometheus.Collector) error   { return nil }
func (m *mockRegistry) MustRegister(cs ...prometheus.Collector) {}
func (m *mockRegistry) Unregister(c prometheus.Collector) bool  { return true }

func testEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		FromAddress:  "onboarding@resend.dev",
		FromName:     "Asbestos Services Hampshire",
		ResendAPIKey: "re_test_key",
	}
}

func testBusinessConfig() *config.BusinessConfig {
	return &config.BusinessConfig{
		SiteName:         "Asbestos Services Hampshire",
		SiteURL:          "https://www.asbestosserviceshampshire.uk",
		InboxAddress:     "asbestoslad@gmail.com",
		SupportPhone:     "07424 521865",
		SupportPhoneHref: "tel:+447424521865",
		ContactEmail:     "info@asbestosserviceshampshire.uk",
	}
}

func testEnquiry() *types.Enquiry {
	return &types.Enquiry{
		Name:     "Jo Bloggs",
		Phone:    "07700 900123",
		Email:    "jo@example.com",
		Message:  "Suspect Artex ceiling in the hallway.",
		Service:  "Asbestos Survey",
		Location: "Winchester",
		Attachments: []types.Attachment{
			{Filename: "ceiling.jpg", ContentType: "image/jpeg", Size: 3, Content: []byte("jpg")},
			{Filename: "survey.pdf", ContentType: "application/pdf", Size: 4, Content: []byte("%PDF")},
		},
	}
}

func TestNewEmailService(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})

	assert.NotNil(t, service)
	assert.NotNil(t, service.client)
	assert.NotNil(t, service.metrics)
}

func TestSendBusinessNotification(t *testing.T) {
	mockEmails := &mockEmailsService{}
	var captured *resend.SendEmailRequest
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil)

	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})
	service.client.Emails = mockEmails

	err := service.SendBusinessNotification(context.Background(), testEnquiry())
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, []string{"asbestoslad@gmail.com"}, captured.To)
	assert.Equal(t, "jo@example.com", captured.ReplyTo)
	assert.Equal(t, "Asbestos Services Hampshire <onboarding@resend.dev>", captured.From)
	assert.Equal(t, "New Enquiry from Jo Bloggs — Asbestos Survey", captured.Subject)

	require.Len(t, captured.Attachments, 2)
	assert.Equal(t, "ceiling.jpg", captured.Attachments[0].Filename)
	assert.Equal(t, "survey.pdf", captured.Attachments[1].Filename)
	assert.Equal(t, []byte("%PDF"), captured.Attachments[1].Content)

	assert.Contains(t, captured.Html, "Jo Bloggs")
	assert.Contains(t, captured.Html, "Winchester")
	assert.Contains(t, captured.Html, "ceiling.jpg, survey.pdf")
	assert.Contains(t, captured.Html, "Suspect Artex ceiling in the hallway.")

	mockEmails.AssertExpectations(t)
}

func TestSendCustomerConfirmation(t *testing.T) {
	mockEmails := &mockEmailsService{}
	var captured *resend.SendEmailRequest
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil)

	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})
	service.client.Emails = mockEmails

	err := service.SendCustomerConfirmation(context.Background(), testEnquiry())
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, []string{"jo@example.com"}, captured.To)
	assert.Empty(t, captured.ReplyTo)
	assert.Equal(t, "We've received your enquiry — Asbestos Services Hampshire", captured.Subject)
	assert.Empty(t, captured.Attachments)

	assert.Contains(t, captured.Html, "Dear Jo Bloggs")
	assert.Contains(t, captured.Html, "Asbestos Survey")
	assert.Contains(t, captured.Html, "Files attached: 2")
	assert.Contains(t, captured.Html, "07424 521865")

	mockEmails.AssertExpectations(t)
}

func TestOmittedOptionalFieldsDisplayNotSpecified(t *testing.T) {
	mockEmails := &mockEmailsService{}
	var bodies []string
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			bodies = append(bodies, args.Get(1).(*resend.SendEmailRequest).Html)
		}).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil)

	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})
	service.client.Emails = mockEmails

	enquiry := testEnquiry()
	enquiry.Service = ""
	enquiry.Location = ""

	require.NoError(t, service.SendBusinessNotification(context.Background(), enquiry))
	require.NoError(t, service.SendCustomerConfirmation(context.Background(), enquiry))

	require.Len(t, bodies, 2)
	for _, body := range bodies {
		assert.Contains(t, body, "Not specified")
	}

	mockEmails.AssertExpectations(t)
}

func TestSendFailure(t *testing.T) {
	mockEmails := &mockEmailsService{}
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(nil, assert.AnError)

	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})
	service.client.Emails = mockEmails

	assert.Error(t, service.SendBusinessNotification(context.Background(), testEnquiry()))
	assert.Error(t, service.SendCustomerConfirmation(context.Background(), testEnquiry()))

	mockEmails.AssertExpectations(t)
}

func TestEmailMetrics(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), testBusinessConfig(), &mockRegistry{})
	mockEmails := &mockEmailsService{}
	service.client.Emails = mockEmails

	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil).Once()

	initialSentCount := testGetCounterValue(service.metrics.sentCount)
	initialErrorCount := testGetCounterValue(service.metrics.errorCount)

	err := service.SendBusinessNotification(context.Background(), testEnquiry())
	assert.NoError(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount, testGetCounterValue(service.metrics.errorCount))

	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(nil, assert.AnError).Once()

	err = service.SendCustomerConfirmation(context.Background(), testEnquiry())
	assert.Error(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount+1, testGetCounterValue(service.metrics.errorCount))

	mockEmails.AssertExpectations(t)
}

// Helper function to get counter value
func testGetCounterValue(counter prometheus.Counter) float64 {
	var m dto.Metric
	counter.Write(&m)
	return *m.Counter.Value
}
