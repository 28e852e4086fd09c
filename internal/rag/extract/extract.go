package extract

import (
	"fmt"
	"strings"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

var logger *logger_i.Logger

func initLogger() {
	if logger == nil {
		logger = logger_i.NewLogger("Extraction")
	}
}

// Text normalizes fetched content into plain text for summarization and chunking.
// Unsupported content types are a processing failure, not a fetch failure - the
// bytes arrived fine, we just can't read them.
func Text(content []byte, contentType string) (string, error) {
	initLogger()

	switch {
	case contentType == "text/html" || contentType == "application/xhtml+xml":
		return extractHTML(content)
	case contentType == "application/pdf":
		return extractPDF(content)
	case contentType == "application/msword" ||
		contentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document" ||
		contentType == "application/rtf" ||
		contentType == "application/vnd.oasis.opendocument.text":
		return extractDocument(content, contentType)
	case strings.HasPrefix(contentType, "text/") || contentType == "application/json":
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported content type %s: %w", contentType, linkModel.ErrProcessingFailure)
	}
}
