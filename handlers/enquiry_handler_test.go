package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AsbestosServicesHampshire/ash-backend/errors"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/middleware"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, enquiry *types.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}

func setupEnquiryRouter(processor EnquiryProcessor) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/contact", NewEnquiryHandler(processor).SubmitEnquiry)
	return r
}

type filePart struct {
	name    string
	content []byte
}

// buildMultipart assembles a contact-form request body the way a browser
// submits the form: text fields first, then every file under the files field.
func buildMultipart(t *testing.T, fields map[string]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func postContact(t *testing.T, r *gin.Engine, fields map[string]string, files []filePart) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := buildMultipart(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validFields() map[string]string {
	return map[string]string{
		"name":    "Sarah Whitfield",
		"phone":   "07700 900123",
		"email":   "sarah@example.com",
		"message": "Suspect asbestos in the garage roof, please advise.",
	}
}

func TestSubmitEnquirySuccess(t *testing.T) {
	processor := new(mockProcessor)
	var captured *types.Enquiry
	processor.On("Process", mock.Anything, mock.AnythingOfType("*types.Enquiry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*types.Enquiry)
		}).
		Return(nil)

	fields := validFields()
	fields["service"] = "Asbestos Surveys"
	fields["location"] = "Winchester"
	fields["propertyType"] = "Domestic"
	fields["bedrooms"] = "3"
	fields["urgency"] = "ASAP"
	fields["preferredDate"] = "2026-09-14"

	w := postContact(t, setupEnquiryRouter(processor), fields, []filePart{
		{name: "roof.jpg", content: []byte("jpeg-bytes")},
		{name: "survey.pdf", content: []byte("pdf-bytes")},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	require.NotNil(t, captured)
	assert.Equal(t, "Sarah Whitfield", captured.Name)
	assert.Equal(t, "07700 900123", captured.Phone)
	assert.Equal(t, "sarah@example.com", captured.Email)
	assert.Equal(t, "Asbestos Surveys", captured.Service)
	assert.Equal(t, "Winchester", captured.Location)
	assert.Equal(t, "Domestic", captured.PropertyType)
	assert.Equal(t, "3", captured.Bedrooms)
	assert.Equal(t, "ASAP", captured.Urgency)
	assert.Equal(t, "2026-09-14", captured.PreferredDate)

	require.Len(t, captured.Attachments, 2)
	assert.Equal(t, "roof.jpg", captured.Attachments[0].Filename)
	assert.Equal(t, []byte("jpeg-bytes"), captured.Attachments[0].Content)
	assert.Equal(t, "survey.pdf", captured.Attachments[1].Filename)
	assert.Equal(t, int64(len("pdf-bytes")), captured.Attachments[1].Size)
}

func TestSubmitEnquiryMissingRequiredField(t *testing.T) {
	for _, field := range []string{"name", "phone", "email", "message"} {
		t.Run(field, func(t *testing.T) {
			processor := new(mockProcessor)
			fields := validFields()
			delete(fields, field)

			w := postContact(t, setupEnquiryRouter(processor), fields, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Please fill in all required fields.", resp.Error)

			// An invalid submission must never trigger email dispatch.
			processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitEnquiryWhitespaceOnlyFieldRejected(t *testing.T) {
	processor := new(mockProcessor)
	fields := validFields()
	fields["name"] = "   "

	w := postContact(t, setupEnquiryRouter(processor), fields, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestSubmitEnquiryDropsZeroSizeParts(t *testing.T) {
	processor := new(mockProcessor)
	var captured *types.Enquiry
	processor.On("Process", mock.Anything, mock.AnythingOfType("*types.Enquiry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*types.Enquiry)
		}).
		Return(nil)

	// A browser submits an empty file part when the picker is left untouched.
	w := postContact(t, setupEnquiryRouter(processor), validFields(), []filePart{
		{name: "empty", content: nil},
		{name: "roof.jpg", content: []byte("jpeg-bytes")},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	require.Len(t, captured.Attachments, 1)
	assert.Equal(t, "roof.jpg", captured.Attachments[0].Filename)
}

func TestSubmitEnquiryOptionalFieldsDefaultEmpty(t *testing.T) {
	processor := new(mockProcessor)
	var captured *types.Enquiry
	processor.On("Process", mock.Anything, mock.AnythingOfType("*types.Enquiry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*types.Enquiry)
		}).
		Return(nil)

	w := postContact(t, setupEnquiryRouter(processor), validFields(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Empty(t, captured.Service)
	assert.Empty(t, captured.Location)
	assert.Empty(t, captured.PropertyType)
	assert.Empty(t, captured.Attachments)
}

func TestSubmitEnquiryDispatchFailure(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).
		Return(errors.EmailDispatchFailed(assert.AnError))

	w := postContact(t, setupEnquiryRouter(processor), validFields(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong. Please try again or call us directly.", resp.Error)
	// The provider error must stay server-side.
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestSubmitEnquiryNonMultipartRejected(t *testing.T) {
	processor := new(mockProcessor)
	r := setupEnquiryRouter(processor)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
