package vision

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"alert-listener-go/internal/config"
	"alert-listener-go/internal/logging"
	"alert-listener-go/internal/models"
)

const analyzePath = "/vision/v3.2/analyze"

// Client calls the external image-tagging service. The connection is built
// once at startup and is safe to share across concurrent batches.
type Client struct {
	cfg    *config.Config
	http   *resty.Client
	logger zerolog.Logger
}

func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.VisionEndpoint).
		SetTimeout(cfg.VisionTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Ocp-Apim-Subscription-Key", cfg.VisionKey)

	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logging.NewServiceLogger(cfg, "vision"),
	}
}

// Analyze returns the tag set the vision service produced for imageURL.
// A URL that is not well-formed and absolute never reaches the service; the
// call is skipped and a nil analysis is returned. Transport and service
// errors propagate to the caller without retry.
func (c *Client) Analyze(ctx context.Context, imageURL string) (*models.ImageAnalysis, error) {
	if !isAbsoluteURL(imageURL) {
		c.logger.Error().Str("image_url", imageURL).Msg("Invalid remote image URL, skipping analysis")
		return nil, nil
	}

	var analysis models.ImageAnalysis
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("visualFeatures", "Tags").
		SetBody(map[string]string{"url": imageURL}).
		SetResult(&analysis).
		Post(analyzePath)
	if err != nil {
		return nil, fmt.Errorf("vision analyze call failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vision analyze returned %s: %s", resp.Status(), resp.String())
	}

	c.logger.Debug().
		Str("image_url", imageURL).
		Int("tags", len(analysis.Tags)).
		Msg("Image analysis complete")

	return &analysis, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
