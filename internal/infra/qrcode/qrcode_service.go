// Package qrcode renders share QR codes for listing detail pages.
package qrcode

import (
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	qrcodeLib "github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const defaultQRCodeSize = 256

// qrCodeService implements QRCodeService using skip2/go-qrcode.
type qrCodeService struct {
	baseURL string
	size    int
	level   qrcodeLib.RecoveryLevel
	logger  *slog.Logger
}

// Params holds dependencies for QRCodeService, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewQRCodeService creates the QR code renderer from configuration.
func NewQRCodeService(params Params) service.QRCodeService {
	size := defaultQRCodeSize
	baseURL := ""
	level := qrcodeLib.Medium

	if cfg := params.Config.QRCode; cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
		level = parseRecoveryLevel(cfg.ErrorCorrectionLevel)
	}

	return &qrCodeService{
		baseURL: baseURL,
		size:    size,
		level:   level,
		logger:  params.Logger,
	}
}

// GenerateListingQRCode renders a PNG QR code encoding the listing share URL.
func (s *qrCodeService) GenerateListingQRCode(listingID string) ([]byte, error) {
	return qrcodeLib.Encode(s.GetListingShareURL(listingID), s.level, s.size)
}

// GetListingShareURL returns the public share URL encoded in the QR code.
func (s *qrCodeService) GetListingShareURL(listingID string) string {
	return s.baseURL + "/listings/" + listingID
}

func parseRecoveryLevel(level string) qrcodeLib.RecoveryLevel {
	switch strings.ToLower(level) {
	case "low":
		return qrcodeLib.Low
	case "high":
		return qrcodeLib.High
	case "highest":
		return qrcodeLib.Highest
	default:
		return qrcodeLib.Medium
	}
}
