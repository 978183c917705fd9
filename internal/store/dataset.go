package store

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/stockfolio/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var sampleData embed.FS

const (
	sampleUsers  = "data/users.json"
	sampleStocks = "data/stocks.json"
)

// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load builds a Store from dataset files. An empty path selects the embedded
// sample for that collection. The records are not validated: missing fields
// decode as zero values and surface only where they are used.
func Load(usersPath, stocksPath string) (*Store, error) {
	var users []*model.UserRecord
	if err := readDataset(usersPath, sampleUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var stocks []model.StockRecord
	if err := readDataset(stocksPath, sampleStocks, &stocks); err != nil {
		return nil, fmt.Errorf("failed to load stocks: %w", err)
	}

	return New(users, stocks), nil
}

func readDataset(path, sample string, out any) error {
	if path == "" {
		data, err := sampleData.ReadFile(sample)
		if err != nil {
			return err
		}

		return json.Unmarshal(data, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return decode(path, data, out)
}

func decode(path string, data []byte, out any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	return nil
}
