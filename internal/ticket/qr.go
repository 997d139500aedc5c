package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Jgauri24/happenix/internal/domain"
)

const qrSize = 300

// QRIssuer renders booking tickets as QR code images on disk. The scannable
// artifact encodes exactly the JSON-serialized ticket payload.
type QRIssuer struct {
	dir     string
	baseURL string
}

// NewQRIssuer creates the issuer and its output directory. baseURL is the
// public path prefix under which the files are served.
func NewQRIssuer(dir, baseURL string) (*QRIssuer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ticket dir: %w", err)
	}
	return &QRIssuer{dir: dir, baseURL: baseURL}, nil
}

func (i *QRIssuer) Issue(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := domain.TicketPayload{
		BookingID: req.BookingID,
		EventID:   req.EventID,
		UserID:    req.UserID,
		Timestamp: req.IssuedAt,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode ticket payload: %w", err)
	}

	fileName := fmt.Sprintf("qr-%s-%d.png", req.BookingID, req.IssuedAt.UnixMilli())
	if err = qrcode.WriteFile(string(raw), qrcode.Highest, qrSize, filepath.Join(i.dir, fileName)); err != nil {
		return nil, fmt.Errorf("write qr code: %w", err)
	}

	return &domain.Ticket{
		Ref:     path.Join(i.baseURL, fileName),
		Payload: payload,
	}, nil
}
