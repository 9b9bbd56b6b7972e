package bucketlist

// TablesConfig maps each category to its Notion database id.
//
// The six legacy categories must be supplied externally; an empty id there is
// a configuration problem reported through health rather than a crash. Books
// and movies may be empty and are provisioned on demand under the configured
// parent page.
type TablesConfig struct {
	LiveShows   string `mapstructure:"live_shows" default:""`
	DiningOut   string `mapstructure:"dining_out" default:""`
	AroundWorld string `mapstructure:"around_world" default:""`
	TVShows     string `mapstructure:"tv_shows" default:""`
	Episodes    string `mapstructure:"episodes" default:""`
	Podcasts    string `mapstructure:"podcasts" default:""`
	Books       string `mapstructure:"books" default:""`
	Movies      string `mapstructure:"movies" default:""`
}

// toMap converts the flat config section into the category-keyed form the
// provisioner works with.
func (c TablesConfig) toMap() map[Category]string {
	return map[Category]string{
		CategoryLiveShows:   c.LiveShows,
		CategoryDiningOut:   c.DiningOut,
		CategoryAroundWorld: c.AroundWorld,
		CategoryTVShows:     c.TVShows,
		CategoryEpisodes:    c.Episodes,
		CategoryPodcasts:    c.Podcasts,
		CategoryBooks:       c.Books,
		CategoryMovies:      c.Movies,
	}
}
