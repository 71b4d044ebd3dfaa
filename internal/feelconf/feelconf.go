// Package feelconf loads an optional IANA zone-alias table used to resolve
// feeltime.Zone.Name to a fixed UTC offset. The temporal kernel
// (internal/feeltime) deliberately stores named zones verbatim rather than
// resolving them itself (spec.md §4.3); this is opt-in test-fixture
// loading, not runtime configuration, so the zero value (no table loaded)
// is a fully valid, empty ZoneTable.
package feelconf

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ZoneTable maps an IANA zone name (e.g. "Europe/Paris") to its UTC offset
// in seconds. A name absent from the table is unresolved, not an error;
// callers fall back to treating the zone as opaque (two Times in the same
// unresolved named zone still compare, per feeltime's own rule; only
// cross-named-zone arithmetic needs a resolved offset).
type ZoneTable map[string]int

// zoneTableDoc mirrors the on-disk YAML shape: a top-level `zones` list so
// the file reads naturally as a table rather than a nested map, e.g.:
//
//	zones:
//	  - name: Europe/Paris
//	    offset_seconds: 3600
type zoneTableDoc struct {
	Zones []zoneEntry `yaml:"zones"`
}

type zoneEntry struct {
	Name          string `yaml:"name"`
	OffsetSeconds int    `yaml:"offset_seconds"`
}

// Load reads a zone-alias table from a YAML file. A missing file is not an
// error — it returns an empty ZoneTable, since the table is opt-in.
func Load(path string) (ZoneTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ZoneTable{}, nil
		}
		return nil, fmt.Errorf("feelconf: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes raw YAML bytes into a ZoneTable.
func Parse(data []byte) (ZoneTable, error) {
	var doc zoneTableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("feelconf: parsing zone table: %w", err)
	}
	table := make(ZoneTable, len(doc.Zones))
	for _, z := range doc.Zones {
		table[z.Name] = z.OffsetSeconds
	}
	return table, nil
}

// Resolve looks up name's UTC offset in seconds.
func (t ZoneTable) Resolve(name string) (offsetSeconds int, ok bool) {
	offsetSeconds, ok = t[name]
	return offsetSeconds, ok
}
