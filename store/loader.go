package store

import (
	"encoding/json"
	"os"

	"careline/common/logger"
	"careline/config"
	"careline/schema"
)

// LoadFAQs reads the FAQ dataset at path. A missing or malformed file is
// logged and yields an empty list; the caller's store then degrades to
// fallback answers instead of failing the process.
func LoadFAQs(path string) []schema.FAQRecord {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("store: could not read faq dataset %s: %v", path, err)
		return nil
	}
	var ds schema.FAQDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		logger.Errorf("store: invalid faq dataset %s: %v", path, err)
		return nil
	}
	logger.Infof("store: loaded %d faqs from %s", len(ds.FAQs), path)
	return ds.FAQs
}

// LoadOrders reads the order dataset at path with the same degrade-to-empty
// policy as LoadFAQs.
func LoadOrders(path string) []schema.OrderRecord {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("store: could not read order dataset %s: %v", path, err)
		return nil
	}
	var ds schema.OrderDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		logger.Errorf("store: invalid order dataset %s: %v", path, err)
		return nil
	}
	logger.Infof("store: loaded %d orders from %s", len(ds.Orders), path)
	return ds.Orders
}

// NewStoresFromConfig builds both stores from the configured data sources.
// Load failures have already been absorbed by the loaders, so this never
// fails.
func NewStoresFromConfig(cfg config.DataConfig) (*FAQStore, *OrderStore) {
	faqs := NewFAQStore(LoadFAQs(cfg.FAQPath))

	var orders *OrderStore
	if cfg.OrderProvider == "sqlite" {
		orders = NewOrderStore(LoadOrdersFromSQLite(cfg.OrderDatabase))
	} else {
		orders = NewOrderStore(LoadOrders(cfg.OrderPath))
	}
	return faqs, orders
}
