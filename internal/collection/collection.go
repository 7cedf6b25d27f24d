// Package collection holds reconciled invoices in memory, keyed by the file
// they came from. Reprocessing a file supersedes its previous invoices
// wholesale; removing a file destroys them.
package collection

import (
	"sort"
	"sync"

	"hylin/einvoice-csv/internal/models"
)

// Collection is the in-process invoice store. One logical writer at a time
// is assumed; the mutex only protects map integrity.
type Collection struct {
	mu      sync.RWMutex
	byFile  map[string][]models.Invoice
	fileIDs []string
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{byFile: make(map[string][]models.Invoice)}
}

// Put stores the invoices parsed from a file, replacing any invoices the
// file produced before.
func (c *Collection) Put(fileID string, invoices []models.Invoice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, seen := c.byFile[fileID]; !seen {
		c.fileIDs = append(c.fileIDs, fileID)
	}
	c.byFile[fileID] = invoices
}

// Remove drops a file and all invoices it owned.
func (c *Collection) Remove(fileID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byFile, fileID)
	for i, id := range c.fileIDs {
		if id == fileID {
			c.fileIDs = append(c.fileIDs[:i], c.fileIDs[i+1:]...)
			break
		}
	}
}

// Get returns the invoices owned by a file.
func (c *Collection) Get(fileID string) []models.Invoice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byFile[fileID]
}

// All returns every stored invoice across files, in file insertion order.
func (c *Collection) All() []models.Invoice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var all []models.Invoice
	for _, id := range c.fileIDs {
		all = append(all, c.byFile[id]...)
	}
	return all
}

// Files returns the known file IDs, sorted.
func (c *Collection) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	files := append([]string{}, c.fileIDs...)
	sort.Strings(files)
	return files
}

// Len returns the total invoice count across files.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, invoices := range c.byFile {
		n += len(invoices)
	}
	return n
}
