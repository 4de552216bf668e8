package cv

import (
	"bytes"

	"code.sajari.com/docconv"
)

// docconvBackend shells out to pdftotext. It yields the whole body as one page.
type docconvBackend struct{}

func (docconvBackend) Pages(data []byte) ([]string, error) {
	body, _, err := docconv.ConvertPDF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return []string{body}, nil
}
