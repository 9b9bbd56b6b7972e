package bucketlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"

	"go.uber.org/zap"
)

// Provisioner owns the category → database id mapping and creates missing
// databases for the generic categories.
//
// Legacy ids only ever come from configuration; a missing legacy id is a
// configuration bug this component does not fix. Ids adopted after creation
// live for the rest of the process only, so re-running with an unset id will
// create a duplicate table. That is accepted for a one-time setup operation.
type Provisioner struct {
	client       notion.Client
	parentPageID string
	logger       *zap.Logger

	mu  sync.Mutex
	ids map[Category]string
}

// InitResult summarizes a startup provisioning pass.
type InitResult struct {
	Created  []Category
	Existing []Category
	Errors   map[Category]string
}

// OK reports whether every category initialized without error.
func (r *InitResult) OK() bool { return len(r.Errors) == 0 }

// NewProvisioner creates a provisioner seeded with the configured table ids.
func NewProvisioner(client notion.Client, tables TablesConfig, parentPageID string, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		client:       client,
		parentPageID: parentPageID,
		logger:       logger,
		ids:          tables.toMap(),
	}
}

// TableID returns the currently known database id for a category, or "".
func (p *Provisioner) TableID(c Category) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ids[c]
}

// CategoryFor resolves a database id back to its category. Used to translate
// inbound webhook payloads.
func (p *Provisioner) CategoryFor(tableID string) (Category, bool) {
	if tableID == "" {
		return "", false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for c, id := range p.ids {
		if id == tableID {
			return c, true
		}
	}
	return "", false
}

// Ensure resolves the database id for a category, creating the database for
// generic categories when a parent page is configured.
//
// Returns ("", nil) for a generic category that cannot be provisioned yet;
// callers decide whether that means an empty read or a NotProvisioned write
// failure.
func (p *Provisioner) Ensure(ctx context.Context, c Category) (string, error) {
	desc, ok := descriptors[c]
	if !ok {
		return "", &UnknownCategoryError{Category: string(c)}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if id := p.ids[c]; id != "" {
		return id, nil
	}

	if !desc.Generic {
		// Pre-provisioned categories must have their id supplied externally.
		return "", &UnknownCategoryError{Category: string(c)}
	}

	if p.parentPageID == "" {
		p.logger.Warn("Database not configured and no parent page to create it under",
			zap.String("category", string(c)))
		return "", nil
	}

	schema, ok := provisionSchema(c)
	if !ok {
		return "", fmt.Errorf("no provisioning schema declared for category %s", c)
	}

	id, err := p.client.CreateDatabase(ctx, &notion.DatabaseRequest{
		ParentPageID: p.parentPageID,
		Title:        desc.Name,
		Emoji:        desc.Icon,
		Properties:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create %s database: %w", c, err)
	}

	p.ids[c] = id
	p.logger.Info("Adopted newly created database",
		zap.String("category", string(c)), zap.String("database_id", id))
	return id, nil
}

// InitializeAll provisions every generic category that is still missing.
// Failures are isolated per category so one broken schema does not abort
// its siblings.
func (p *Provisioner) InitializeAll(ctx context.Context) *InitResult {
	result := &InitResult{Errors: make(map[Category]string)}

	for _, c := range Categories() {
		if !IsGeneric(c) {
			continue
		}
		if existing := p.TableID(c); existing != "" {
			result.Existing = append(result.Existing, c)
			continue
		}
		id, err := p.Ensure(ctx, c)
		switch {
		case err != nil:
			p.logger.Error("Failed to initialize database",
				zap.String("category", string(c)), zap.Error(err))
			result.Errors[c] = err.Error()
		case id == "":
			result.Errors[c] = "parent page id not configured"
		default:
			result.Created = append(result.Created, c)
		}
	}

	return result
}
