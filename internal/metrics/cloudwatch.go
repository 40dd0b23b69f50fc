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
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
	environmentProduction    = "production"
)

// metricPutter is the part of the CloudWatch client we use
type metricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      metricPutter
	enabled     bool
	environment string
	namespace   string
	async       bool
}

// NewClient creates a new CloudWatch metrics client
func NewClient(ctx context.Context, environment, namespace string) (*Client, error) {
	// Only enable in production
	if environment != environmentProduction {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{
			enabled:     false,
			environment: environment,
			namespace:   namespace,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false, environment: environment, namespace: namespace}, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)

	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
		namespace:   namespace,
		async:       true,
	}, nil
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(_ context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("Endpoint"),
				Value: aws.String(endpoint),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	})
}

// RecordScaleGeneration records one scale computation, by type and outcome
func (m *Client) RecordScaleGeneration(_ context.Context, scaleType string, success bool, _ time.Duration) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		dimensions := []types.Dimension{
			{
				Name:  aws.String("ScaleType"),
				Value: aws.String(scaleType),
			},
			{
				Name:  aws.String("Success"),
				Value: aws.String(boolToString(success)),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, "ScaleGenerations", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record ScaleGenerations metric: %v", err)
		}
	})
}

// dispatch runs fn off the request path in production
func (m *Client) dispatch(fn func(ctx context.Context)) {
	if m.async {
		go fn(context.Background())
		return
	}
	fn(context.Background())
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	ctx context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
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

	return err
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
