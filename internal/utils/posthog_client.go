package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient forwards product events to PostHog. A client built without an
// API key is disabled and drops every event.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient returns a disabled client when apiKey is empty.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) (*AnalyticsClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Info("PostHog API key not set, analytics disabled")
		return &AnalyticsClient{logger: logger}, nil
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	logger.Info("PostHog analytics enabled", slog.String("endpoint", endpoint))
	return &AnalyticsClient{client: client, logger: logger}, nil
}

func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Enqueue hands the event to the PostHog batcher. Delivery failures are logged only.
func (a *AnalyticsClient) Enqueue(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to flush analytics events", slog.String("error", err.Error()))
	}
}
