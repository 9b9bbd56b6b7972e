package bucketlist

import (
	"context"
	"fmt"
	"time"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
	"github.com/dorsabag/bucketListBackendDeploy/feature/bucketlist/models"

	"go.uber.org/zap"
)

const (
	// DefaultListLimit is the item cap when the caller does not specify one.
	DefaultListLimit = 500
	// MaxListLimit bounds a single list request.
	MaxListLimit = 500

	episodesScanLimit = 100
	citiesScanLimit   = 200
)

// ListResult is the outcome of a category read.
type ListResult struct {
	Category Category         `json:"category"`
	Items    []*notion.Record `json:"items"`
	Count    int              `json:"count"`
	HasMore  bool             `json:"has_more"`
}

// RelatedResult is the outcome of a parent → children lookup.
type RelatedResult struct {
	ParentID    string           `json:"parent_id"`
	ParentTitle string           `json:"parent_title"`
	Items       []*notion.Record `json:"items"`
	Count       int              `json:"count"`
}

// AdminResult reports one category's outcome in a batch admin operation.
type AdminResult struct {
	Category Category `json:"category"`
	Status   string   `json:"status"`
	Message  string   `json:"message"`
}

// Service implements the bucket list operations on top of the Notion client.
type Service struct {
	client notion.Client
	prov   *Provisioner
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new bucket list service.
func NewService(client notion.Client, prov *Provisioner, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		prov:   prov,
		logger: logger,
		now:    time.Now,
	}
}

// Provisioner exposes the table mapping for collaborators (webhook routing,
// startup provisioning).
func (s *Service) Provisioner() *Provisioner {
	return s.prov
}

// Create validates and stores a new item in the category's database.
func (s *Service) Create(ctx context.Context, category Category, item *models.ItemCreate) (*notion.Record, error) {
	if !Known(category) {
		return nil, &UnknownCategoryError{Category: string(category)}
	}
	if err := item.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	databaseID, err := s.prov.Ensure(ctx, category)
	if err != nil {
		return nil, err
	}
	if databaseID == "" {
		return nil, &NotProvisionedError{Category: category}
	}

	props, err := MapProperties(category, item.Data())
	if err != nil {
		return nil, err
	}

	// The provisioned tables track when an item was added; stamp it unless
	// the caller supplied one.
	if IsGeneric(category) {
		if _, ok := props["Added Date"]; !ok {
			props["Added Date"] = map[string]any{
				"date": map[string]any{"start": s.now().Format(time.RFC3339)},
			}
		}
	}

	rec, err := s.client.CreatePage(ctx, databaseID, props)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Created item",
		zap.String("category", string(category)), zap.String("item_id", rec.ID))
	return rec, nil
}

// List reads up to limit items from a category. A generic category without a
// database reads as empty; for around_world only parent (country) items are
// returned.
func (s *Service) List(ctx context.Context, category Category, limit int) (*ListResult, error) {
	if !Known(category) {
		return nil, &UnknownCategoryError{Category: string(category)}
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	databaseID := s.prov.TableID(category)
	if databaseID == "" {
		if IsGeneric(category) {
			return &ListResult{Category: category, Items: []*notion.Record{}}, nil
		}
		return nil, &UnknownCategoryError{Category: string(category)}
	}

	res, err := s.client.QueryDatabase(ctx, databaseID, limit)
	if err != nil {
		return nil, err
	}

	items := res.Records
	if category == CategoryAroundWorld {
		items = filterParents(items)
	}

	return &ListResult{
		Category: category,
		Items:    items,
		Count:    len(items),
		HasMore:  res.HasMore,
	}, nil
}

// filterParents drops city rows from an around_world listing, keeping only
// country items.
func filterParents(items []*notion.Record) []*notion.Record {
	parents := make([]*notion.Record, 0, len(items))
	for _, item := range items {
		if IsParentItem(item.Title()) {
			parents = append(parents, item)
		}
	}
	return parents
}

// Update patches an existing item. The transformed payload is sparse:
// properties that resolved to empty are omitted so existing remote values
// survive.
func (s *Service) Update(ctx context.Context, category Category, itemID string, item *models.ItemUpdate) (*notion.Record, error) {
	if !Known(category) {
		return nil, &UnknownCategoryError{Category: string(category)}
	}
	if err := item.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if item.IsEmpty() {
		return nil, &ValidationError{Message: "no update data provided"}
	}

	props, err := MapProperties(category, item.Data())
	if err != nil {
		return nil, err
	}

	rec, err := s.client.UpdatePage(ctx, itemID, props)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Updated item",
		zap.String("category", string(category)), zap.String("item_id", itemID))
	return rec, nil
}

// Archive soft-deletes an item.
func (s *Service) Archive(ctx context.Context, category Category, itemID string) error {
	if !Known(category) {
		return &UnknownCategoryError{Category: string(category)}
	}
	if err := s.client.ArchivePage(ctx, itemID); err != nil {
		return err
	}
	s.logger.Info("Archived item",
		zap.String("category", string(category)), zap.String("item_id", itemID))
	return nil
}

// Episodes resolves the episodes belonging to a TV show. Matching is
// heuristic: explicit relation ids first, then fuzzy title containment.
func (s *Service) Episodes(ctx context.Context, showID string) (*RelatedResult, error) {
	if s.prov.TableID(CategoryTVShows) == "" {
		return nil, &UnknownCategoryError{Category: string(CategoryTVShows)}
	}

	show, err := s.client.GetPage(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch show %s: %w", showID, err)
	}
	showTitle := show.Title()

	episodesID := s.prov.TableID(CategoryEpisodes)
	if episodesID == "" {
		return &RelatedResult{ParentID: showID, ParentTitle: showTitle, Items: []*notion.Record{}}, nil
	}

	res, err := s.client.QueryDatabase(ctx, episodesID, episodesScanLimit)
	if err != nil {
		return nil, err
	}

	matched := make([]*notion.Record, 0)
	for _, episode := range res.Records {
		if EpisodeMatchesShow(showID, showTitle, episode.Properties) {
			matched = append(matched, episode)
		}
	}

	s.logger.Info("Resolved show episodes",
		zap.String("show", showTitle), zap.Int("matched", len(matched)),
		zap.Int("scanned", len(res.Records)))

	return &RelatedResult{
		ParentID:    showID,
		ParentTitle: showTitle,
		Items:       matched,
		Count:       len(matched),
	}, nil
}

// Cities resolves the city items belonging to an around_world country.
func (s *Service) Cities(ctx context.Context, countryID string) (*RelatedResult, error) {
	if s.prov.TableID(CategoryAroundWorld) == "" {
		return nil, &UnknownCategoryError{Category: string(CategoryAroundWorld)}
	}

	country, err := s.client.GetPage(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch country %s: %w", countryID, err)
	}
	countryTitle := country.Title()

	res, err := s.client.QueryDatabase(ctx, s.prov.TableID(CategoryAroundWorld), citiesScanLimit)
	if err != nil {
		return nil, err
	}

	matched := make([]*notion.Record, 0)
	for _, item := range res.Records {
		if item.ID == countryID {
			continue
		}
		if CityBelongsToCountry(countryTitle, item.Title()) {
			matched = append(matched, item)
		}
	}

	s.logger.Info("Resolved country cities",
		zap.String("country", countryTitle), zap.Int("matched", len(matched)))

	return &RelatedResult{
		ParentID:    countryID,
		ParentTitle: StripFlags(countryTitle),
		Items:       matched,
		Count:       len(matched),
	}, nil
}

// AddImageProperties retrofits an Image url property onto every configured
// legacy database. Failures are isolated per category.
func (s *Service) AddImageProperties(ctx context.Context) []AdminResult {
	results := make([]AdminResult, 0)
	for _, c := range Categories() {
		if IsGeneric(c) {
			continue
		}
		databaseID := s.prov.TableID(c)
		if databaseID == "" {
			continue
		}

		err := s.client.UpdateDatabase(ctx, databaseID, map[string]any{
			"Image": map[string]any{"url": map[string]any{}},
		})
		if err != nil {
			results = append(results, AdminResult{
				Category: c, Status: "error", Message: err.Error(),
			})
			continue
		}
		results = append(results, AdminResult{
			Category: c, Status: "success",
			Message: fmt.Sprintf("Added Image property to %s", c),
		})
	}
	return results
}

// Connectivity performs a minimal remote read, used by the health probe.
func (s *Service) Connectivity(ctx context.Context) error {
	_, err := s.List(ctx, CategoryLiveShows, 1)
	return err
}
