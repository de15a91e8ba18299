package domain

import "testing"

func TestClassifyType(t *testing.T) {
	cases := []struct {
		dataType string
		want     TypeClass
	}{
		{"integer", TypeNumeric},
		{"bigint", TypeNumeric},
		{"smallint", TypeNumeric},
		{"numeric", TypeNumeric},
		{"decimal", TypeNumeric},
		{"double precision", TypeNumeric},
		{"real", TypeNumeric},
		{"money", TypeNumeric},
		{"timestamp without time zone", TypeTemporal},
		{"timestamp with time zone", TypeTemporal},
		{"date", TypeTemporal},
		{"time without time zone", TypeTemporal},
		{"character varying", TypeTextual},
		{"text", TypeTextual},
		{"VARCHAR", TypeTextual},
		{"TIMESTAMP", TypeTemporal},
		{"BIGINT", TypeNumeric},
		// Exotic types must fall back to textual rather than fail.
		{"jsonb", TypeTextual},
		{"uuid", TypeTextual},
		{"bytea", TypeTextual},
		{"", TypeTextual},
	}

	for _, tc := range cases {
		if got := ClassifyType(tc.dataType); got != tc.want {
			t.Errorf("ClassifyType(%q) = %v, want %v", tc.dataType, got, tc.want)
		}
	}
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("ordinary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.RootTable() != "ordinary_member" {
		t.Fatalf("unexpected root table: %s", v.RootTable())
	}
	if got := v.ChildTable(ChildFamilies[0]); got != "ordinary_address" {
		t.Fatalf("unexpected child table: %s", got)
	}

	if _, err := VariantByName("honorary"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}
