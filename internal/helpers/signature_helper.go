package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TicketSignature signs the (ticket, event, user) triple so a QR code
// presented at the door can be checked against the database without
// trusting the client.
func TicketSignature(ticketID, eventID, userID uuid.UUID, secretKey string) string {
	data := fmt.Sprintf("%s:%s:%s", ticketID.String(), eventID.String(), userID.String())
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func TicketQRData(ticketID, eventID, userID uuid.UUID, secretKey string) string {
	signature := TicketSignature(ticketID, eventID, userID, secretKey)
	return fmt.Sprintf("ticket:%s;event:%s;signature:%s",
		ticketID.String(),
		eventID.String(),
		signature,
	)
}

func ExtractTicketIDFromQRData(qrData string) (uuid.UUID, error) {
	parts := strings.Split(qrData, ";")
	if len(parts) != 3 || !strings.HasPrefix(parts[0], "ticket:") || !strings.HasPrefix(parts[2], "signature:") {
		return uuid.Nil, fmt.Errorf("invalid QR data format")
	}
	return uuid.Parse(strings.TrimPrefix(parts[0], "ticket:"))
}

func ValidateTicketSignature(ticketID, eventID, userID uuid.UUID, secretKey, qrData string) bool {
	parts := strings.Split(qrData, ";")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "signature:") {
		return false
	}

	signature := strings.TrimPrefix(parts[2], "signature:")
	expectedSignature := TicketSignature(ticketID, eventID, userID, secretKey)
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}
