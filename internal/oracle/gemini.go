package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"avoronin/cashback-matrix/internal/logging"
	"avoronin/cashback-matrix/internal/models"
)

const extractionInstructions = `You read Russian bank cashback category offers.
Return ONLY a JSON array, no prose, where every element is
{"bank": "<bank name as shown>", "category": "<category name>", "percent": <number>}.
Percent is the cashback percentage as a number (5 means 5%).
If you cannot find any offers, return [].`

var (
	_ ExtractionClient = (*GeminiClient)(nil)
	_ RewriteClient    = (*GeminiClient)(nil)
)

// GeminiClient implements ExtractionClient and RewriteClient over the Google
// Gemini API.
type GeminiClient struct {
	modelName string
	apiKey    string
	timeout   time.Duration
	log       logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a client for the given model. The API key is
// required; the connection itself is established lazily on first use.
func NewGeminiClient(modelName, apiKey string, timeout time.Duration, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		modelName: modelName,
		apiKey:    apiKey,
		timeout:   timeout,
		log:       logger.WithField("component", "GeminiClient"),
	}, nil
}

func (c *GeminiClient) ensureModel(ctx context.Context) error {
	if c.model != nil {
		return nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	return nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.model = nil
	return err
}

// ExtractFromImage extracts cashback offers from a screenshot.
func (c *GeminiClient) ExtractFromImage(ctx context.Context, data []byte, format string) ([]models.RawEntry, error) {
	c.log.WithFields(
		logging.Field{Key: "bytes", Value: len(data)},
		logging.Field{Key: "format", Value: format},
	).Debug("Extracting offers from image")

	reply, err := c.generate(ctx,
		genai.ImageData(format, data),
		genai.Text(extractionInstructions+"\n\nExtract every cashback offer visible in this screenshot."),
	)
	if err != nil {
		return nil, err
	}

	return c.parsed(reply, "image")
}

// ExtractFromText extracts cashback offers from a free-text comment.
func (c *GeminiClient) ExtractFromText(ctx context.Context, comment string) ([]models.RawEntry, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("empty comment")
	}

	c.log.WithField("length", len(comment)).Debug("Extracting offers from text")

	reply, err := c.generate(ctx,
		genai.Text(extractionInstructions+"\n\nExtract every cashback offer from this comment:\n"+comment),
	)
	if err != nil {
		return nil, err
	}

	entries, err := c.parsed(reply, "text")
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].OriginalText = comment
	}
	return entries, nil
}

// Rewrite applies a natural-language correction instruction to the whole
// dataset and returns the rewritten entries.
func (c *GeminiClient) Rewrite(ctx context.Context, entries []models.RawEntry, instruction string) ([]models.RawEntry, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, fmt.Errorf("empty correction instruction")
	}

	current, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal current entries: %w", err)
	}

	prompt := fmt.Sprintf(`Here is the current dataset of cashback offers as a JSON array:
%s

Apply this correction instruction to the dataset and return the FULL corrected
dataset in the same JSON array format, nothing else:
%s`, string(current), instruction)

	c.log.WithField("entries", len(entries)).Debug("Rewriting dataset")

	reply, err := c.generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	return c.parsed(reply, "rewrite")
}

func (c *GeminiClient) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if err := c.ensureModel(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		fmt.Fprintf(&b, "%v", part)
	}
	return b.String(), nil
}

func (c *GeminiClient) parsed(reply, source string) ([]models.RawEntry, error) {
	entries, err := ParseEntries(reply)
	if err != nil {
		c.log.WithError(err).WithField(logging.FieldSource, source).Warn("Model reply was not parsable")
		return nil, err
	}

	c.log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: logging.FieldSource, Value: source},
	).Info("Extracted offers")
	return entries, nil
}
