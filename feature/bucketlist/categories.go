package bucketlist

// Category identifies one bucket list collection, mapped 1:1 to a Notion
// database.
type Category string

const (
	CategoryLiveShows   Category = "live_shows"
	CategoryDiningOut   Category = "dining_out"
	CategoryAroundWorld Category = "around_world"
	CategoryTVShows     Category = "tv_shows"
	CategoryEpisodes    Category = "episodes"
	CategoryPodcasts    Category = "podcasts"
	CategoryBooks       Category = "books"
	CategoryMovies      Category = "movies"
)

// Descriptor declares everything category-specific: display metadata, whether
// the category's database is provisioned lazily, and the legacy write mapping
// for categories whose schema already exists in Notion. New categories are
// added here, never by branching on the category string in shared code.
type Descriptor struct {
	Name        string
	Description string
	Icon        string
	// Generic marks lazily-provisioned categories that use the
	// naming-convention property mapper instead of a fixed field table.
	Generic bool
	// Fields is the legacy internal-field → Notion-property mapping.
	// Empty for generic categories.
	Fields []FieldMapping
	// Listed controls whether the category appears in the public
	// category listing (episodes is reachable only through tv_shows).
	Listed bool
}

// descriptors is the single source of truth for category behaviour.
var descriptors = map[Category]Descriptor{
	CategoryLiveShows: {
		Name:        "Live Shows",
		Description: "Concerts, theater, comedy shows, and live performances",
		Icon:        "🎭",
		Listed:      true,
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "image_url", Property: "Image", Kind: KindURL},
			{Key: "location", Property: "מקום", Kind: KindRichText},
			{Key: "date", Property: "תאריך", Kind: KindDate},
			{Key: "with_whom", Property: "עם מי הלכתי", Kind: KindMultiSelect},
		},
	},
	CategoryDiningOut: {
		Name:        "Dining Out",
		Description: "Restaurants, cafes, and culinary experiences",
		Icon:        "🍽️",
		Listed:      true,
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "image_url", Property: "Image", Kind: KindURL},
			{Key: "rating", Property: "ציון", Kind: KindSelect},
			{Key: "cuisine", Property: "קטגוריה", Kind: KindMultiSelect},
		},
	},
	CategoryAroundWorld: {
		Name:        "Around the World",
		Description: "Travel destinations and global experiences",
		Icon:        "🌍",
		Listed:      true,
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "image_url", Property: "Image", Kind: KindURL},
			// The travel table keeps a single date; "X to Y" ranges keep X.
			{Key: "dates", Property: "תאריך", Kind: KindDateStart},
		},
	},
	CategoryTVShows: {
		Name:        "TV Shows",
		Description: "Television series and streaming content",
		Icon:        "📺",
		Listed:      true,
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "image_url", Property: "Image", Kind: KindURL},
			{Key: "rating", Property: "Rating", Kind: KindSelect},
			{Key: "network", Property: "Network", Kind: KindSelect},
			{Key: "airing_years", Property: "Airing Years", Kind: KindRichText},
			{Key: "imdb_link", Property: "IMDb Link", Kind: KindURL},
		},
	},
	CategoryEpisodes: {
		Name:        "Episodes",
		Description: "Episodes of tracked TV shows",
		Icon:        "📺",
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "notes", Property: "Notes", Kind: KindRichText},
			{Key: "image_url", Property: "Image", Kind: KindURL},
		},
	},
	CategoryPodcasts: {
		Name:        "Podcasts",
		Description: "Podcast series and episodes",
		Icon:        "🎧",
		Listed:      true,
		Fields: []FieldMapping{
			{Key: "title", Property: "Name", Kind: KindTitle},
			{Key: "image_url", Property: "Image", Kind: KindURL},
			{Key: "speakers", Property: "דובר/ים", Kind: KindRichText},
			{Key: "network", Property: "Network", Kind: KindSelect},
		},
	},
	CategoryBooks: {
		Name:        "Books",
		Description: "Books to read and literary experiences",
		Icon:        "📚",
		Generic:     true,
		Listed:      true,
	},
	CategoryMovies: {
		Name:        "Movies",
		Description: "Films and cinema experiences",
		Icon:        "🎬",
		Generic:     true,
		Listed:      true,
	},
}

// categoryOrder fixes the listing order.
var categoryOrder = []Category{
	CategoryLiveShows,
	CategoryDiningOut,
	CategoryAroundWorld,
	CategoryTVShows,
	CategoryEpisodes,
	CategoryPodcasts,
	CategoryBooks,
	CategoryMovies,
}

// Known reports whether the category is served by this backend.
func Known(c Category) bool {
	_, ok := descriptors[c]
	return ok
}

// IsGeneric reports whether the category uses the lazily-provisioned path.
func IsGeneric(c Category) bool {
	return descriptors[c].Generic
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	return descriptors[c].Name
}

// Categories returns all known categories in stable order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
