//go:build ocr

// Package ocr reads measurement rows off a photographed or scanned
// measurement sheet.
//
// This package wraps the Tesseract OCR engine via gosseract and requires
// Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Builds without the "ocr" tag get a stub that returns ErrOCRNotEnabled.
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRNotEnabled is returned by the stub build; see ocr_stub.go. It is
// declared in both builds so callers can test for it unconditionally.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps Tesseract for measurement-sheet recognition.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it when done to release engine
// resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the recognition language(s); multiple languages join
// with "+" (e.g. "eng+hin"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeText performs OCR on image data (PNG, JPEG, TIFF) and returns
// the recognized text trimmed of surrounding whitespace.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeRows performs OCR and splits the result into whitespace-
// delimited field rows, the same shape the paste parser consumes.
// Recognition noise is left in: the downstream row parser already skips
// lines that do not carry usable numbers.
func (c *Client) RecognizeRows(imageData []byte) ([][]string, error) {
	text, err := c.RecognizeText(imageData)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	return rows, nil
}
