package cv

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Backend names accepted by NewPDFParser.
const (
	BackendPure    = "pure"
	BackendFitz    = "fitz"
	BackendDocconv = "docconv"
)

var pdfMagic = []byte("%PDF-")

// pageReader turns PDF bytes into per-page text in document order.
type pageReader interface {
	Pages(data []byte) ([]string, error)
}

// TextExtractor is what the HTTP layer needs from the parser.
type TextExtractor interface {
	ParseFile(filename string, reader io.Reader) (*ParsedCV, error)
}

type PDFParser struct {
	backend string
	pages   pageReader
}

type ParsedCV struct {
	Filename string
	FileSize int64
	Pages    int
	FullText string
}

func NewPDFParser(backend string) (*PDFParser, error) {
	var pr pageReader
	switch backend {
	case BackendPure, "":
		backend = BackendPure
		pr = pureBackend{}
	case BackendFitz:
		pr = fitzBackend{}
	case BackendDocconv:
		pr = docconvBackend{}
	default:
		return nil, fmt.Errorf("unknown PDF backend: %s", backend)
	}
	return &PDFParser{backend: backend, pages: pr}, nil
}

func (p *PDFParser) Backend() string { return p.backend }

// ParseFile reads the whole upload and extracts its text. Nothing is written to disk.
func (p *PDFParser) ParseFile(filename string, reader io.Reader) (*ParsedCV, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	pages, text, err := p.extract(data)
	if err != nil {
		return nil, &ParseError{Op: "extract", Filename: filename, Err: err}
	}

	return &ParsedCV{
		Filename: filename,
		FileSize: int64(len(data)),
		Pages:    pages,
		FullText: text,
	}, nil
}

// ExtractText returns the newline-joined, trimmed text of every page.
func (p *PDFParser) ExtractText(data []byte) (string, error) {
	_, text, err := p.extract(data)
	return text, err
}

func (p *PDFParser) extract(data []byte) (int, string, error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), pdfMagic) {
		return 0, "", ErrNotPDF
	}

	pages, err := p.pages.Pages(data)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return len(pages), "", ErrNoText
	}
	return len(pages), text, nil
}
