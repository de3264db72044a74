package ledger

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"resolution-monitoring/internal/logger"
)

// Dial connects to a JSON-RPC endpoint. HTTP endpoints go through a retrying
// transport; timeouts and backoff live there, not in callers.
func Dial(ctx context.Context, rawURL string, maxRetries int, log *logger.Logger) (*rpc.Client, error) {
	var opts []rpc.ClientOption
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		rc := retryablehttp.NewClient()
		rc.RetryMax = maxRetries
		rc.Logger = retryableLogger{log}
		opts = append(opts, rpc.WithHTTPClient(rc.StandardClient()))
	}
	client, err := rpc.DialOptions(ctx, rawURL, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", rawURL)
	}
	return client, nil
}

// retryableLogger adapts our logger to retryablehttp.LeveledLogger.
type retryableLogger struct {
	log *logger.Logger
}

func (r retryableLogger) Error(msg string, keysAndValues ...interface{}) {
	r.log.Errorw(msg, keysAndValues...)
}

func (r retryableLogger) Info(msg string, keysAndValues ...interface{}) {
	r.log.Infow(msg, keysAndValues...)
}

func (r retryableLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.log.Debugw(msg, keysAndValues...)
}

func (r retryableLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.log.Warnw(msg, keysAndValues...)
}
