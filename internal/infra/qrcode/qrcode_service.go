package qrcode

import (
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type pngRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewFromConfig reads the qrcode section. Without it, codes are 256px with medium recovery.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService takes the recovery level by its standard letter (L, M, Q or H). Unknown letters
// mean M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &pngRenderer{size: size, level: recoveryLevel(errorCorrectionLevel)}
}

func recoveryLevel(letter string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (r *pngRenderer) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	code, err := qrcode.New(content, r.level)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr code")
	}

	image, err := code.PNG(r.size)
	if err != nil {
		return nil, errors.Wrap(err, "render qr code png")
	}

	return image, nil
}
