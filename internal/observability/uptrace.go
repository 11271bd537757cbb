package observability

import (
	"context"
	"strconv"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/demonlist/internal/config"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
		uptrace.WithResourceAttributes(resourceAttributes(cfg)...),
	)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newUptraceLogMirror(cfg.ServiceVersion))
	} else {
		logging.SetMirror(nil)
	}

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
		"storage_driver", cfg.StorageDriver,
		"list_size", cfg.ListSize,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

// resourceAttributes describe the list this process serves, so traces from
// differently sized deployments can be told apart.
func resourceAttributes(cfg config.Config) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("demonlist.storage_driver", cfg.StorageDriver),
		attribute.Int("demonlist.list_size", cfg.ListSize),
		attribute.Int("demonlist.extended_list_size", cfg.ExtendedListSize),
		attribute.Bool("demonlist.snapshot_cache", cfg.CacheEnabled),
	}
}

func profileTags(cfg config.Config) map[string]string {
	return map[string]string{
		"env":                cfg.AppEnv,
		"service":            cfg.ServiceName,
		"storage":            cfg.StorageDriver,
		"list_size":          strconv.Itoa(cfg.ListSize),
		"extended_list_size": strconv.Itoa(cfg.ExtendedListSize),
		"snapshot_workers":   strconv.Itoa(cfg.SnapshotWorkers),
	}
}
