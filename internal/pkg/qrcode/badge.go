// Package qrcode renders employee badge QR codes. The encoded payload is
// the employee's NIC, which the attendance kiosk scans to submit marks.
package qrcode

import (
	"fmt"
	"io"

	qr "github.com/skip2/go-qrcode"
)

const badgeSize = 256

// WriteBadge writes a PNG QR code encoding the given NIC to w.
func WriteBadge(nic string, w io.Writer) error {
	png, err := qr.Encode(nic, qr.Medium, badgeSize)
	if err != nil {
		return fmt.Errorf("failed to encode qr code: %w", err)
	}
	if _, err := w.Write(png); err != nil {
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	return nil
}
