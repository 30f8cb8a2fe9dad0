//go:build !ocr

// Package ocr reads measurement rows off a photographed or scanned
// measurement sheet.
//
// This is the stub used when the "ocr" build tag is not set; every
// operation returns ErrOCRNotEnabled. To enable recognition, install
// Tesseract and rebuild with:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client.
type Client struct{}

// New returns ErrOCRNotEnabled in the stub build.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error { return nil }

// SetLanguage returns ErrOCRNotEnabled in the stub build.
func (c *Client) SetLanguage(lang string) error { return ErrOCRNotEnabled }

// RecognizeText returns ErrOCRNotEnabled in the stub build.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeRows returns ErrOCRNotEnabled in the stub build.
func (c *Client) RecognizeRows(imageData []byte) ([][]string, error) {
	return nil, ErrOCRNotEnabled
}
