package relocation

import (
	"reflect"
	"testing"
	"time"

	"membership-portal/internal/domain"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestReconcilePassesBaseFieldsThrough(t *testing.T) {
	source := domain.Record{
		"tax_id":       "TAX-001",
		"company_name": "Acme Foundry",
		"email":        "info@acme.example",
	}
	target := []domain.ColumnDescriptor{
		{Name: "id", DataType: "bigint", HasDefault: true},
		{Name: "tax_id", DataType: "character varying"},
		{Name: "company_name", DataType: "character varying"},
		{Name: "email", DataType: "character varying", Nullable: true},
	}

	fields, values := Reconcile(source, []string{"tax_id", "company_name", "email"}, target, fixedNow)

	wantFields := []string{"tax_id", "company_name", "email"}
	if !reflect.DeepEqual(fields, wantFields) {
		t.Fatalf("fields = %v, want %v", fields, wantFields)
	}
	wantValues := []any{"TAX-001", "Acme Foundry", "info@acme.example"}
	if !reflect.DeepEqual(values, wantValues) {
		t.Fatalf("values = %v, want %v", values, wantValues)
	}
}

func TestReconcileNilsAbsentBaseFields(t *testing.T) {
	source := domain.Record{"tax_id": "TAX-001"}
	target := []domain.ColumnDescriptor{
		{Name: "tax_id", DataType: "character varying"},
		{Name: "email", DataType: "character varying", Nullable: true},
	}

	fields, values := Reconcile(source, []string{"tax_id", "email"}, target, fixedNow)

	if len(fields) != 2 || fields[1] != "email" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if values[1] != nil {
		t.Fatalf("expected nil for absent base field, got %v", values[1])
	}
}

func TestReconcileSynthesizesRequiredExtras(t *testing.T) {
	source := domain.Record{"tax_id": "TAX-001"}
	target := []domain.ColumnDescriptor{
		{Name: "id", DataType: "bigint", HasDefault: true},
		{Name: "tax_id", DataType: "character varying"},
		{Name: "annual_fee", DataType: "numeric"},
		{Name: "approved_at", DataType: "timestamp without time zone"},
		{Name: "sponsor_name", DataType: "character varying"},
		{Name: "notes", DataType: "text", Nullable: true},
		{Name: "created_at", DataType: "timestamp without time zone", HasDefault: true},
	}

	fields, values := Reconcile(source, []string{"tax_id"}, target, fixedNow)

	wantFields := []string{"tax_id", "annual_fee", "approved_at", "sponsor_name"}
	if !reflect.DeepEqual(fields, wantFields) {
		t.Fatalf("fields = %v, want %v", fields, wantFields)
	}
	if values[1] != int64(0) {
		t.Fatalf("numeric default = %v, want int64(0)", values[1])
	}
	if values[2] != fixedNow() {
		t.Fatalf("temporal default = %v, want %v", values[2], fixedNow())
	}
	if values[3] != "" {
		t.Fatalf("textual default = %v, want empty string", values[3])
	}
}

// Every NOT NULL column without a default must be satisfied, whatever shape
// the target catalog takes.
func TestReconcileTotality(t *testing.T) {
	source := domain.Record{"tax_id": "TAX-001"}
	target := []domain.ColumnDescriptor{
		{Name: "id", DataType: "bigint", HasDefault: true},
		{Name: "tax_id", DataType: "character varying"},
		{Name: "a", DataType: "integer"},
		{Name: "b", DataType: "hstore"},
		{Name: "c", DataType: "timestamp with time zone"},
		{Name: "d", DataType: "uuid"},
	}

	fields, _ := Reconcile(source, []string{"tax_id"}, target, fixedNow)

	covered := make(map[string]bool, len(fields))
	for _, f := range fields {
		covered[f] = true
	}
	for _, col := range target {
		if col.Name == domain.IDColumn || col.Nullable || col.HasDefault {
			continue
		}
		if !covered[col.Name] {
			t.Errorf("required column %s not covered", col.Name)
		}
	}
}

func TestReconcileDropsSourceOnlyFields(t *testing.T) {
	source := domain.Record{
		"tax_id":           "TAX-001",
		"factory_license":  "FL-9",
		"legacy_reference": "x",
	}
	target := []domain.ColumnDescriptor{
		{Name: "tax_id", DataType: "character varying"},
	}

	fields, _ := Reconcile(source, []string{"tax_id"}, target, fixedNow)

	if len(fields) != 1 || fields[0] != "tax_id" {
		t.Fatalf("source-only fields should be dropped, got %v", fields)
	}
}

func TestEffectiveBaseFields(t *testing.T) {
	sourceCols := []domain.ColumnDescriptor{
		{Name: "id"}, {Name: "tax_id"}, {Name: "company_name"},
		{Name: "website"}, {Name: "factory_license"},
	}
	targetCols := []domain.ColumnDescriptor{
		{Name: "id"}, {Name: "tax_id"}, {Name: "company_name"},
		{Name: "website"}, {Name: "annual_fee"},
	}

	fields := EffectiveBaseFields([]string{"tax_id", "company_name", "status"}, sourceCols, targetCols)

	want := []string{"tax_id", "company_name", "website"}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("fields = %v, want %v", fields, want)
	}
}

func TestEffectiveBaseFieldsExcludesID(t *testing.T) {
	cols := []domain.ColumnDescriptor{{Name: "id"}, {Name: "tax_id"}}
	fields := EffectiveBaseFields([]string{"id", "tax_id"}, cols, cols)

	for _, f := range fields {
		if f == "id" {
			t.Fatal("id must never be copied between variants")
		}
	}
}
