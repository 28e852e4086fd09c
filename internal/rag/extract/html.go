package extract

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	readability "github.com/go-shiori/go-readability"
)

// extraction only needs relative links resolved consistently, the page's real
// origin is not available at this layer
var placeholderBase = &url.URL{Scheme: "https", Host: "localhost"}

func extractHTML(content []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(content), placeholderBase)
	if err != nil {
		return "", fmt.Errorf("readability extraction: %w: %w", linkModel.ErrProcessingFailure, err)
	}
	if article.TextContent == "" {
		return "", fmt.Errorf("page has no readable text: %w", linkModel.ErrProcessingFailure)
	}
	return article.TextContent, nil
}
