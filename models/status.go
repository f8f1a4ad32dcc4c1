package models

// Status is the WhatsApp session state reported by the backend for one
// account.
type Status string

const (
	StatusDisconnected  Status = "disconnected"
	StatusInitializing  Status = "initializing"
	StatusGeneratingQR  Status = "generating_qr"
	StatusQR            Status = "qr"
	StatusAuthenticated Status = "authenticated"
	StatusConnected     Status = "connected"
	StatusError         Status = "error"

	// StatusUnknown is used for any status string the backend sends that is
	// not part of the closed set above.
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a raw status string onto the closed [Status] set.
// Empty and unrecognised values yield [StatusUnknown].
func ParseStatus(raw string) Status {
	switch s := Status(raw); s {
	case StatusDisconnected, StatusInitializing, StatusGeneratingQR, StatusQR,
		StatusAuthenticated, StatusConnected, StatusError:
		return s
	default:
		return StatusUnknown
	}
}

// AllowsQR reports whether a QR payload may be shown while in s.
func (s Status) AllowsQR() bool {
	return s == StatusGeneratingQR || s == StatusQR
}

// Pending reports whether s is a step of a pairing attempt that has not yet
// produced anything to show.
func (s Status) Pending() bool {
	return s == StatusInitializing || s == StatusGeneratingQR
}

// BlocksConnect reports whether a new connect request must be refused in s.
func (s Status) BlocksConnect() bool {
	return s == StatusConnected || s == StatusInitializing || s == StatusAuthenticated
}

func (s Status) String() string {
	return string(s)
}

// ConnectionStatus is the canonical, normalised view of the session status.
// It is replaced as a whole on every update.
type ConnectionStatus struct {
	Status  Status `json:"status"`
	QR      string `json:"qr,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// HasQR reports whether a QR payload is present. Views render a QR code
// whenever this is true, regardless of which QR-capable status carries it.
func (c ConnectionStatus) HasQR() bool {
	return c.QR != ""
}

// Normalized returns c with QR cleared when the status does not allow one.
func (c ConnectionStatus) Normalized() ConnectionStatus {
	if !c.Status.AllowsQR() {
		c.QR = ""
	}
	return c
}

// StatusDocument is the wire form of the per-account status document, both
// as pushed by the realtime channel and as returned by GET /status.
//
// Fields are pointers so a partial document can be told apart from one that
// carries empty values.
type StatusDocument struct {
	Status      *string `json:"status,omitempty"`
	QRCodeURL   *string `json:"qrCodeUrl,omitempty"`
	Error       *string `json:"error,omitempty"`
	Message     *string `json:"message,omitempty"`
	BotIsPaused *bool   `json:"botIsPaused,omitempty"`
}

// Snapshot is one point-in-time status observation delivered to the
// session store.
type Snapshot struct {
	Status ConnectionStatus
	// BotPaused is nil when the document did not carry the flag.
	BotPaused *bool
}

// BotStatus describes the auto-reply bot of the connected account.
type BotStatus struct {
	IsPaused  bool `json:"is_paused"`
	IsLoading bool `json:"is_loading"`
}
