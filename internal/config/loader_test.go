package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.DBName != "membership_portal" {
		t.Fatalf("unexpected default db config: %+v", cfg.DB)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORTAL_DATABASE_HOST", "db.internal")
	t.Setenv("PORTAL_DATABASE_PORT", "6543")
	t.Setenv("PORTAL_SERVER_ADDR", ":9090")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.DB.Host != "db.internal" {
		t.Fatalf("env override for host did not apply: %s", cfg.DB.Host)
	}
	if cfg.DB.Port != 6543 {
		t.Fatalf("env override for port did not apply: %d", cfg.DB.Port)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("env override for addr did not apply: %s", cfg.Server.Addr)
	}
}
