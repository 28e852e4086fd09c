package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w: %w", linkModel.ErrProcessingFailure, err)
	}

	var pages []string
	numPages := reader.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := protectExtract(page)
		if err != nil {
			// keep going, a single broken page shouldn't sink the document
			logger.Error("Error parsing page content", "page", i, "error", err)
			continue
		}
		pages = append(pages, pageText)
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("pdf yielded no extractable text: %w", linkModel.ErrProcessingFailure)
	}
	return strings.Join(pages, "\n\n"), nil
}

// extractDocument handles docx, rtf and odt. The cat library only reads from the
// filesystem, so the fetched bytes take a detour through a temp file.
func extractDocument(content []byte, contentType string) (string, error) {
	tempFile, err := os.CreateTemp("", "linkapi-extract-*"+documentExtension(contentType))
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w: %w", linkModel.ErrProcessingFailure, err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			logger.Error("Error removing temp file", "error", err)
		}
	}()

	if _, err := tempFile.Write(content); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("writing temp file: %w: %w", linkModel.ErrProcessingFailure, err)
	}
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w: %w", linkModel.ErrProcessingFailure, err)
	}

	text, err := cat.File(tempFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to extract document text: %w: %w", linkModel.ErrProcessingFailure, err)
	}
	return text, nil
}

func documentExtension(contentType string) string {
	switch contentType {
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ".docx"
	case "application/rtf":
		return ".rtf"
	case "application/vnd.oasis.opendocument.text":
		return ".odt"
	default:
		return ".doc"
	}
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		logger.Error("pageExtract", "timeout", true)
		return "", errors.New("timeout")
	}
}
