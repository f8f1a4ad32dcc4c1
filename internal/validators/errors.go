package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDocument = errors.New("status document carries no fields")
	ErrEmptyStatus   = errors.New("status is empty")
	ErrFieldTooLong  = errors.New("field is too long")
	ErrInvalidQRCode = errors.New("invalid qr code")
)
