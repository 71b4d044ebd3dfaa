package feelconf

import "testing"

func TestParseZoneTable(t *testing.T) {
	data := []byte(`
zones:
  - name: Europe/Paris
    offset_seconds: 3600
  - name: America/New_York
    offset_seconds: -18000
`)
	table, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if off, ok := table.Resolve("Europe/Paris"); !ok || off != 3600 {
		t.Errorf("Europe/Paris: got %d ok=%v", off, ok)
	}
	if _, ok := table.Resolve("Mars/Olympus"); ok {
		t.Errorf("expected unresolved zone to report ok=false")
	}
}

func TestLoadMissingFileIsEmptyNotError(t *testing.T) {
	table, err := Load("/nonexistent/path/zones.yaml")
	if err != nil {
		t.Fatalf("expected missing file to be a no-op, got error: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}
