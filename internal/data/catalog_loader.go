package data

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/fitsim/internal/attr"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Items []catalogItem `yaml:"items"`
}

type catalogItem struct {
	Name       string             `yaml:"name"`
	Category   int32              `yaml:"category"`
	Attributes map[string]float64 `yaml:"attributes"`
}

// LoadDefaultCatalog parses the catalog shipped with the binary.
func LoadDefaultCatalog() (*MemoryCatalog, error) {
	items, err := parseCatalog(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	slog.Debug("loaded embedded catalog", "count", len(items))
	return NewMemoryCatalog(items...), nil
}

// LoadCatalogFile loads a YAML catalog from path.
func LoadCatalogFile(path string) (*MemoryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	items, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	slog.Info("loaded catalog", "path", path, "count", len(items))
	return NewMemoryCatalog(items...), nil
}

// ReadCatalog decodes YAML catalog items from r.
func ReadCatalog(r io.Reader) ([]*Item, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) ([]*Item, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(file.Items))
	for i, ci := range file.Items {
		if ci.Name == "" {
			return nil, fmt.Errorf("item #%d: empty name", i)
		}
		attrs := make(map[attr.Key]float64, len(ci.Attributes))
		for name, v := range ci.Attributes {
			key, err := parseAttributeKey(name)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", ci.Name, err)
			}
			attrs[key] = v
		}
		items = append(items, &Item{Name: ci.Name, CategoryID: ci.Category, Attributes: attrs})
	}
	return items, nil
}

// parseAttributeKey accepts a known attribute name or a raw numeric key.
func parseAttributeKey(s string) (attr.Key, error) {
	if k, ok := AttributeByName(s); ok {
		return k, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown attribute %q", s)
	}
	return attr.Key(n), nil
}
