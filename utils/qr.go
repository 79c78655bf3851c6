package utils

import "github.com/skip2/go-qrcode"

// GenerateQRCode renders content as a size x size PNG, used for booking
// check-in codes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
