package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace                = "TweetCraft/API"
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// metricPutter is the slice of the CloudWatch API we use
type metricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      metricPutter
	enabled     bool
	environment string
}

// NewClient creates a new CloudWatch metrics client. It is only enabled in production.
func NewClient(ctx context.Context, environment string) (*Client, error) {
	if environment != "production" {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{
			enabled:     false,
			environment: environment,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false, environment: environment}, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)
	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
	}, nil
}

// Enabled reports whether metrics are sent
func (m *Client) Enabled() bool {
	return m.enabled && m.client != nil
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(_ context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.Enabled() {
		return
	}

	metricName := "APIRequests"
	if statusCode >= httpStatusServerError {
		metricName = "APIErrors"
	}
	dimensions := m.dimensions("Endpoint", endpoint)

	go func() {
		m.putMetric(metricName, 1, types.StandardUnitCount, dimensions)
		m.putMetric("APILatency", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dimensions)
	}()
}

// RecordTokenUsage records LLM token usage per model and stage
func (m *Client) RecordTokenUsage(_ context.Context, model, stage string, inputTokens, outputTokens int64) {
	if !m.Enabled() {
		return
	}

	dimensions := append(m.dimensions("Model", model), types.Dimension{
		Name:  aws.String("Stage"),
		Value: aws.String(stage),
	})

	go func() {
		m.putMetric("LLMTokens/Input", float64(inputTokens), types.StandardUnitCount, dimensions)
		m.putMetric("LLMTokens/Output", float64(outputTokens), types.StandardUnitCount, dimensions)
	}()
}

// RecordGenerationDuration records one model call's duration
func (m *Client) RecordGenerationDuration(_ context.Context, stage string, duration time.Duration, success bool) {
	if !m.Enabled() {
		return
	}

	dimensions := append(m.dimensions("Stage", stage), types.Dimension{
		Name:  aws.String("Success"),
		Value: aws.String(boolToString(success)),
	})

	go m.putMetric("GenerationDuration", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dimensions)
}

// RecordQualityVerdict counts PASS/FAIL verdicts
func (m *Client) RecordQualityVerdict(_ context.Context, verdict string) {
	if !m.Enabled() {
		return
	}
	go m.putMetric("QualityVerdicts", 1, types.StandardUnitCount, m.dimensions("Verdict", verdict))
}

func (m *Client) dimensions(name, value string) []types.Dimension {
	return []types.Dimension{
		{Name: aws.String(name), Value: aws.String(value)},
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
	}
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(metricName string, value float64, unit types.StandardUnit, dimensions []types.Dimension) {
	cwCtx, cancel := context.WithTimeout(context.Background(), cloudwatchTimeoutSeconds*time.Second)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})
	if err != nil {
		log.Printf("Failed to record %s metric: %v", metricName, err)
	}
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
