package ticket

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jgauri24/happenix/internal/domain"
)

func TestQRIssuer_Issue(t *testing.T) {
	dir := t.TempDir()
	issuer, err := NewQRIssuer(dir, "/uploads/qr-codes")
	require.NoError(t, err)

	req := domain.TicketRequest{
		BookingID: uuid.New().String(),
		EventID:   uuid.New().String(),
		UserID:    uuid.New().String(),
		IssuedAt:  time.Now(),
	}

	ticket, err := issuer.Issue(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ticket.Ref, "/uploads/qr-codes/qr-"+req.BookingID))
	assert.True(t, strings.HasSuffix(ticket.Ref, ".png"))
	assert.Equal(t, req.BookingID, ticket.Payload.BookingID)
	assert.Equal(t, req.EventID, ticket.Payload.EventID)
	assert.Equal(t, req.UserID, ticket.Payload.UserID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestQRIssuer_PayloadFieldNames(t *testing.T) {
	payload := domain.TicketPayload{
		BookingID: "b1",
		EventID:   "e1",
		UserID:    "u1",
		Timestamp: time.Now(),
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "bookingId")
	assert.Contains(t, decoded, "eventId")
	assert.Contains(t, decoded, "userId")
	assert.Contains(t, decoded, "timestamp")
}

func TestQRIssuer_CancelledContext(t *testing.T) {
	issuer, err := NewQRIssuer(t.TempDir(), "/uploads/qr-codes")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = issuer.Issue(ctx, domain.TicketRequest{
		BookingID: uuid.New().String(),
		IssuedAt:  time.Now(),
	})

	assert.Error(t, err)
}

func TestNewQRIssuer_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "qr")

	_, err := NewQRIssuer(dir, "/uploads/qr-codes")

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
