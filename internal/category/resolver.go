package category

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/smartfin/statement-importer/internal/store"
)

// Resolver maps raw category labels to category ids for one user. It keeps
// a per-instance cache so a label is looked up (and a missing category
// created) at most once per import; a Resolver lives for exactly one
// import and is never shared.
//
// Resolve never fails: any store error degrades to a nil id so a
// categorization problem cannot block a transaction from importing.
type Resolver struct {
	categories store.CategoryStore
	mapping    Mapping
	userID     int64
	logger     *log.Logger

	cache  map[string]*int64
	byName map[string]int64
	loaded bool
}

// NewResolver creates a resolver for a single import session.
func NewResolver(categories store.CategoryStore, mapping Mapping, userID int64, logger *log.Logger) *Resolver {
	return &Resolver{
		categories: categories,
		mapping:    mapping,
		userID:     userID,
		logger:     logger,
		cache:      make(map[string]*int64),
	}
}

// Resolve returns the category id for a raw label, or nil when the label is
// empty or resolution fails. A creation failure is cached so the label is
// not retried within the session.
func (r *Resolver) Resolve(ctx context.Context, label string) *int64 {
	norm := Normalize(label)
	if norm == "" {
		return nil
	}

	if id, ok := r.cache[norm]; ok {
		return id
	}

	if err := r.load(ctx); err != nil {
		r.logger.Warn("listing categories failed, transaction stays uncategorized",
			"label", label, "error", err)
		r.cache[norm] = nil
		return nil
	}

	target := r.mapping.Target(label)
	if id, ok := r.byName[Normalize(target)]; ok {
		r.cache[norm] = &id
		return &id
	}

	created, err := r.categories.CreateCategory(ctx, r.userID, target)
	if err != nil {
		r.logger.Warn("creating category failed, transaction stays uncategorized",
			"category", target, "error", err)
		r.cache[norm] = nil
		return nil
	}

	r.byName[Normalize(created.Name)] = created.ID
	id := created.ID
	r.cache[norm] = &id
	return &id
}

// load fetches the user's existing categories once per session.
func (r *Resolver) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	existing, err := r.categories.ListCategories(ctx, r.userID)
	if err != nil {
		return err
	}
	r.byName = make(map[string]int64, len(existing))
	for _, c := range existing {
		r.byName[Normalize(c.Name)] = c.ID
	}
	r.loaded = true
	return nil
}
