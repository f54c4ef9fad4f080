// Package client implements the contact-form controller: the state machine a
// form front end drives to stage attachments and submit an enquiry to the
// intake endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/models/enquiry"
)

// Status is the submission lifecycle state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// ErrSubmissionInFlight is returned by Submit while a previous submission is
// still being processed.
var ErrSubmissionInFlight = errors.New("submission already in flight")

const (
	// fallbackErrorMessage is shown when the server responds non-2xx without a
	// usable error payload.
	fallbackErrorMessage = "Something went wrong. Please try again."
	// networkErrorMessage is shown when the request never produced a response.
	networkErrorMessage = "Network error. Please check your connection or call us directly."
)

// FormController owns one contact-form interaction: the field state, the
// attachment stage, and the submission status. A controller is safe for
// concurrent use; Submit is guarded so only one submission runs at a time.
type FormController struct {
	mu       sync.Mutex
	form     *enquiry.Form
	status   Status
	errorMsg string

	endpoint   string
	httpClient *http.Client
}

// NewFormController returns an idle controller posting to endpoint with the
// given client. A nil client falls back to http.DefaultClient.
func NewFormController(endpoint string, httpClient *http.Client, policy enquiry.StagePolicy) *FormController {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FormController{
		form:       enquiry.NewForm(policy),
		status:     StatusIdle,
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Form exposes the underlying form state for field mutation and reads.
func (fc *FormController) Form() *enquiry.Form {
	return fc.form
}

// Status returns the current submission status.
func (fc *FormController) Status() Status {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.status
}

// ErrorMessage returns the user-facing message for the last failure, or empty.
func (fc *FormController) ErrorMessage() string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.errorMsg
}

// AddFiles offers a batch of candidates to the attachment stage and returns
// the per-file rejections. Accepted files survive rejected siblings.
func (fc *FormController) AddFiles(candidates ...enquiry.StagedFile) []enquiry.Rejection {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.form.Attachments.Add(candidates...)
}

// RemoveFile drops the staged file at index, reporting whether it existed.
func (fc *FormController) RemoveFile(index int) bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.form.Attachments.Remove(index)
}

// Reset returns the controller to a pristine idle state, discarding all field
// values and staged attachments.
func (fc *FormController) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.form.Reset()
	fc.status = StatusIdle
	fc.errorMsg = ""
}

// Submit posts the form as multipart/form-data to the intake endpoint. On a
// 2xx response all form state is cleared and the status becomes success. On a
// non-2xx response or a transport failure the state is preserved so the user
// can retry, and the status carries a user-facing message.
func (fc *FormController) Submit(ctx context.Context) error {
	fc.mu.Lock()
	if fc.status == StatusSubmitting {
		fc.mu.Unlock()
		return ErrSubmissionInFlight
	}
	fc.status = StatusSubmitting
	fc.errorMsg = ""
	fc.mu.Unlock()

	body, contentType, err := fc.buildPayload()
	if err != nil {
		fc.fail(fallbackErrorMessage)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fc.endpoint, body)
	if err != nil {
		fc.fail(fallbackErrorMessage)
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := fc.httpClient.Do(req)
	if err != nil {
		fc.fail(networkErrorMessage)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fc.fail(serverErrorMessage(resp.Body))
		return fmt.Errorf("enquiry submission rejected: status %d", resp.StatusCode)
	}

	fc.mu.Lock()
	fc.form.Reset()
	fc.status = StatusSuccess
	fc.mu.Unlock()

	logger.GetLogger().Debugw("Enquiry submitted", "endpoint", fc.endpoint)
	return nil
}

// buildPayload assembles the multipart body: every text field, then every
// staged file re-inserted fresh under the files field.
func (fc *FormController) buildPayload() (*bytes.Buffer, string, error) {
	fc.mu.Lock()
	fields := fc.form.Fields()
	files := fc.form.Attachments.Files()
	fc.mu.Unlock()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func (fc *FormController) fail(message string) {
	fc.mu.Lock()
	fc.status = StatusError
	fc.errorMsg = message
	fc.mu.Unlock()
}

// serverErrorMessage extracts the error field from a rejection payload,
// falling back to a generic message when the body is not usable.
func serverErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Error == "" {
		return fallbackErrorMessage
	}
	return payload.Error
}
