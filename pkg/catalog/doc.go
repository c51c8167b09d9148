// Package catalog provides ports.ActionCatalog implementations: a fixed list of
// actions and a parametric grid over water and fertilizer amounts.
package catalog
