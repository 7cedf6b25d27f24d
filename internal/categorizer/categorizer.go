// Package categorizer assigns a category from a fixed taxonomy to free-text
// item names using ordered keyword matching. The order of the groups is
// significant: an item name matching several groups resolves to the first
// group tested, which keeps categorization output stable across runs.
package categorizer

import (
	"strings"

	"hylin/einvoice-csv/internal/amountutils"
	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"
)

// CategoryStoreInterface abstracts the category keyword store so the
// categorizer can be tested without touching the filesystem.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Categorizer classifies item names. Construct instances explicitly and
// pass them where needed; there is no package-level singleton.
type Categorizer struct {
	groups []keywordGroup
	logger logging.Logger
}

type keywordGroup struct {
	category string
	keywords []string
}

// New creates a Categorizer. Groups loaded from the store are tested first,
// in file order, followed by the built-in taxonomy groups. A nil store
// yields the built-in taxonomy alone.
func New(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = &logging.MockLogger{}
	}

	c := &Categorizer{logger: logger}

	if store != nil {
		configs, err := store.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load category overrides, using built-in taxonomy")
		} else {
			for _, cfg := range configs {
				c.groups = append(c.groups, keywordGroup{
					category: cfg.Name,
					keywords: normalizeKeywords(cfg.Keywords),
				})
			}
		}
	}

	c.groups = append(c.groups, defaultGroups()...)
	return c
}

// Categorize returns the category for an item name. Matching is
// case-insensitive and width-normalized; unmatched names fall back to the
// catch-all category. The function is pure and deterministic.
func (c *Categorizer) Categorize(itemName string) string {
	name := normalizeText(itemName)
	if name == "" {
		return models.CategoryOther
	}

	for _, group := range c.groups {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.category
			}
		}
	}

	return models.CategoryOther
}

func normalizeText(s string) string {
	return strings.ToLower(amountutils.Normalize(strings.TrimSpace(s)))
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if n := normalizeText(k); n != "" {
			out = append(out, n)
		}
	}
	return out
}
