package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/demonlist/internal/config"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "demonlist-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSNDisables(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "demonlist-api",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestResourceAttributesDescribeList(t *testing.T) {
	cfg := config.Config{StorageDriver: config.StoragePostgres, ListSize: 75, ExtendedListSize: 150, CacheEnabled: true}

	got := map[string]string{}
	for _, kv := range resourceAttributes(cfg) {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	want := map[string]string{
		"demonlist.storage_driver":     "postgres",
		"demonlist.list_size":          "75",
		"demonlist.extended_list_size": "150",
		"demonlist.snapshot_cache":     "true",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("attribute %s=%q want %q", k, got[k], v)
		}
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{
		AppEnv:           config.EnvProd,
		ServiceName:      "demonlist-api",
		StorageDriver:    config.StorageMemory,
		ListSize:         75,
		ExtendedListSize: 150,
		SnapshotWorkers:  4,
	})
	if tags["storage"] != "memory" || tags["list_size"] != "75" || tags["snapshot_workers"] != "4" || tags["env"] != config.EnvProd {
		t.Fatalf("unexpected tags: %+v", tags)
	}
}
