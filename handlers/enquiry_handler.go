package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/AsbestosServicesHampshire/ash-backend/errors"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
	"github.com/gin-gonic/gin"
)

// EnquiryProcessor dispatches the notification emails for a validated enquiry.
type EnquiryProcessor interface {
	Process(ctx context.Context, enquiry *types.Enquiry) error
}

// EnquiryHandler handles contact-form submissions.
type EnquiryHandler struct {
	processor EnquiryProcessor
}

func NewEnquiryHandler(processor EnquiryProcessor) *EnquiryHandler {
	return &EnquiryHandler{processor: processor}
}

// requiredFields maps wire field names to their trimmed values. Iteration
// order does not matter; any empty value fails the whole request.
func requiredFields(c *gin.Context) (map[string]string, []string) {
	fields := map[string]string{
		"name":    strings.TrimSpace(c.PostForm("name")),
		"phone":   strings.TrimSpace(c.PostForm("phone")),
		"email":   strings.TrimSpace(c.PostForm("email")),
		"message": strings.TrimSpace(c.PostForm("message")),
	}
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	return fields, missing
}

// SubmitEnquiry handles a multipart contact-form submission: validates the
// required fields, reads any staged attachments into memory, and hands the
// enquiry to the processor for email dispatch.
// @Summary Submit a contact enquiry
// @Description Accepts a multipart contact-form submission and dispatches the notification emails
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} types.SuccessResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/contact [post]
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	log := logger.GetLogger()

	form, err := c.MultipartForm()
	if err != nil {
		_ = c.Error(errors.ValidationFailed(
			"Please fill in all required fields.",
			fmt.Sprintf("multipart parse failed: %v", err)))
		return
	}

	fields, missing := requiredFields(c)
	if len(missing) > 0 {
		// No emails are sent for an invalid submission.
		_ = c.Error(errors.ValidationFailed(
			"Please fill in all required fields.",
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))))
		return
	}

	attachments, err := readAttachments(form.File["files"])
	if err != nil {
		_ = c.Error(err)
		return
	}

	enquiry := &types.Enquiry{
		Name:          fields["name"],
		Phone:         fields["phone"],
		Email:         fields["email"],
		Message:       fields["message"],
		Service:       strings.TrimSpace(c.PostForm("service")),
		Location:      strings.TrimSpace(c.PostForm("location")),
		PropertyType:  strings.TrimSpace(c.PostForm("propertyType")),
		Bedrooms:      strings.TrimSpace(c.PostForm("bedrooms")),
		Urgency:       strings.TrimSpace(c.PostForm("urgency")),
		PreferredDate: strings.TrimSpace(c.PostForm("preferredDate")),
		Attachments:   attachments,
	}

	if err := h.processor.Process(c.Request.Context(), enquiry); err != nil {
		_ = c.Error(err)
		return
	}

	log.Infow("Enquiry accepted",
		"email", logger.MaskEmail(enquiry.Email),
		"attachments", len(enquiry.Attachments))

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// readAttachments reads every nonzero-size part under the files field fully
// into memory, preserving part order and original filenames. Zero-size parts
// are dropped without comment; browsers send one for an empty file input.
func readAttachments(parts []*multipart.FileHeader) ([]types.Attachment, error) {
	var attachments []types.Attachment
	for _, part := range parts {
		if part.Size == 0 {
			continue
		}

		file, err := part.Open()
		if err != nil {
			return nil, errors.Wrap(err, errors.ServerError,
				fmt.Sprintf("failed to open attachment %q", part.Filename))
		}
		content, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, errors.Wrap(err, errors.ServerError,
				fmt.Sprintf("failed to read attachment %q", part.Filename))
		}
		if closeErr != nil {
			return nil, errors.Wrap(closeErr, errors.ServerError,
				fmt.Sprintf("failed to close attachment %q", part.Filename))
		}

		attachments = append(attachments, types.Attachment{
			Filename:    part.Filename,
			ContentType: part.Header.Get("Content-Type"),
			Size:        part.Size,
			Content:     content,
		})
	}
	return attachments, nil
}
