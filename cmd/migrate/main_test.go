package main

import "testing"

func TestMigrationDSN(t *testing.T) {
	t.Parallel()

	base := "postgres://hr:hr@localhost:5432/hr_roster?sslmode=disable"

	if got := migrationDSN(base, ""); got != base {
		t.Fatalf("expected DSN unchanged, got %s", got)
	}

	want := "postgres://hr:hr@localhost:5432/hr_roster?sslmode=disable&x-migrations-table=schema_seeds"
	if got := migrationDSN(base, "schema_seeds"); got != want {
		t.Fatalf("unexpected DSN. want %s got %s", want, got)
	}
}

func TestEffectiveConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if got := effectiveConfigPath(""); got != "assets/local.yaml" {
		t.Fatalf("expected default path, got %s", got)
	}

	t.Setenv("CONFIG_PATH", "/etc/hr/config.yaml")
	if got := effectiveConfigPath(""); got != "/etc/hr/config.yaml" {
		t.Fatalf("expected env path, got %s", got)
	}
	if got := effectiveConfigPath("custom.yaml"); got != "custom.yaml" {
		t.Fatalf("expected flag path, got %s", got)
	}
}
