package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/koafy/setter-console/models"
)

const (
	FieldStatus  = "status"
	FieldQRCode  = "qr_code"
	FieldError   = "error"
	FieldMessage = "message"
)

const (
	maxStatusLength = 64
	maxTextLength   = 2048
	// maxQRLength fits a PNG data URI of a pairing code.
	maxQRLength = 256 << 10

	dataURIPrefix  = "data:"
	imageURIPrefix = "data:image/"
)

type StatusDocumentValidator struct{}

func NewStatusDocumentValidator() Validator {
	return &StatusDocumentValidator{}
}

// Validate checks a models.StatusDocument. Without fields every rule is
// applied. Unknown status values and QR codes sent with statuses that cannot
// show one are accepted; the event source normalizes both.
func (v *StatusDocumentValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StatusDocument:
		return v.validateStatusDocument(value, fields...)
	case *models.StatusDocument:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStatusDocument(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StatusDocumentValidator) validateStatusDocument(doc models.StatusDocument, fields ...string) error {
	if len(fields) == 0 {
		if isEmptyDocument(doc) {
			return ErrEmptyDocument
		}
		fields = []string{FieldStatus, FieldQRCode, FieldError, FieldMessage}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldStatus:
			err = validateStatus(doc.Status)
		case FieldQRCode:
			err = validateQRCode(doc.QRCodeURL)
		case FieldError:
			err = validateText(FieldError, doc.Error)
		case FieldMessage:
			err = validateText(FieldMessage, doc.Message)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func isEmptyDocument(doc models.StatusDocument) bool {
	return doc.Status == nil && doc.QRCodeURL == nil && doc.Error == nil &&
		doc.Message == nil && doc.BotIsPaused == nil
}

func validateStatus(status *string) error {
	if status == nil {
		return nil
	}
	s := strings.TrimSpace(*status)
	if s == "" {
		return ErrEmptyStatus
	}
	if len(s) > maxStatusLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldStatus)
	}
	return nil
}

func validateQRCode(qr *string) error {
	if qr == nil || *qr == "" {
		return nil
	}
	if len(*qr) > maxQRLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldQRCode)
	}
	if strings.HasPrefix(*qr, dataURIPrefix) && !strings.HasPrefix(*qr, imageURIPrefix) {
		return fmt.Errorf("%w: data uri is not an image", ErrInvalidQRCode)
	}
	return nil
}

func validateText(field string, value *string) error {
	if value != nil && len(*value) > maxTextLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
