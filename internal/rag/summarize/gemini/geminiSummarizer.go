package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/rag/extract"
	"github.com/akolanti/LinkAPI/internal/rag/summarize"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
	"google.golang.org/genai"
)

// the model only needs enough of the document to title and summarize it
const summaryInputLimit = 12000

type summarizer struct {
	client *genai.Client
	model  string
}

var logger *logger_i.Logger
var geminiSummarizer *summarizer
var once sync.Once

func GetGeminiSummarizer(ctx context.Context, modelName string, apikey string) summarize.Processor {
	once.Do(func() {
		logger = logger_i.NewLogger("gemini_summarizer")
		newSummarizer(ctx, modelName, apikey)
	})

	if geminiSummarizer == nil {
		return nil
	}
	return &summarizer{client: geminiSummarizer.client, model: geminiSummarizer.model}
}

func newSummarizer(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiSummarizer = &summarizer{client: c, model: modelName}
	logger.Info("Gemini summarizer created", "model", modelName)
	go closeClient(ctx, geminiSummarizer)
}

func closeClient(ctx context.Context, s *summarizer) {
	<-ctx.Done()
	logger.Info("Closing Gemini summarizer")
	s.client = nil
	s.model = ""
}

func (s *summarizer) Process(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	text, err := extract.Text(content, contentType)
	if err != nil {
		return linkModel.ProcessedContent{}, err
	}

	chunks := summarize.SplitText(text, config.MaxChunkSize, config.ChunkOverlap)
	log.Debug("Split document", "chunks", len(chunks))

	title, summary, err := s.titleAndSummary(ctx, text)
	if err != nil {
		return linkModel.ProcessedContent{}, err
	}

	return linkModel.ProcessedContent{
		Title:   title,
		Summary: summary,
		Chunks:  chunks,
	}, nil
}

func (s *summarizer) titleAndSummary(ctx context.Context, text string) (string, string, error) {
	if len(text) > summaryInputLimit {
		text = text[:summaryInputLimit]
	}

	prompt := fmt.Sprintf(
		"Give this document a short descriptive title and a 2-3 sentence summary.\n\nDocument:\n%s", text)

	contentConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":   {Type: genai.TypeString},
				"summary": {Type: genai.TypeString},
			},
			Required: []string{"title", "summary"},
		},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), contentConfig)
	if err != nil {
		return "", "", fmt.Errorf("gemini summarization: %w: %w", linkModel.ErrProcessingFailure, err)
	}

	return parseTitleSummary(result.Text())
}

func parseTitleSummary(raw string) (string, string, error) {
	var parsed struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", "", fmt.Errorf("unparseable summarizer output: %w: %w", linkModel.ErrProcessingFailure, err)
	}
	if parsed.Title == "" && parsed.Summary == "" {
		return "", "", fmt.Errorf("empty summarizer output: %w", linkModel.ErrProcessingFailure)
	}
	return parsed.Title, parsed.Summary, nil
}
