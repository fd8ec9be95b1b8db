package domain

import "errors"

var (
	MessageFailedDownloadPDF = "an error occurred while downloading the PDF"

	ErrNotPDF = errors.New("response is not a PDF")
)
