package bucketlist

// Declarative Notion schemas for the lazily-provisioned categories. Shared
// base properties mirror what the pre-provisioned tables use, so every
// category carries the same status/priority/rating vocabulary.

func selectOptions(pairs ...[2]string) map[string]any {
	options := make([]any, 0, len(pairs))
	for _, p := range pairs {
		options = append(options, map[string]any{"name": p[0], "color": p[1]})
	}
	return map[string]any{"select": map[string]any{"options": options}}
}

// commonProperties returns the base schema shared by all provisioned tables.
func commonProperties() map[string]any {
	return map[string]any{
		"Title": map[string]any{"title": map[string]any{}},
		"Status": selectOptions(
			[2]string{"Not Started", "red"},
			[2]string{"In Progress", "yellow"},
			[2]string{"Completed", "green"},
			[2]string{"Cancelled", "gray"},
		),
		"Priority": selectOptions(
			[2]string{"High", "red"},
			[2]string{"Medium", "yellow"},
			[2]string{"Low", "blue"},
		),
		"Added Date":     map[string]any{"date": map[string]any{}},
		"Completed Date": map[string]any{"date": map[string]any{}},
		"Notes":          map[string]any{"rich_text": map[string]any{}},
		"Rating": selectOptions(
			[2]string{"⭐", "red"},
			[2]string{"⭐⭐", "orange"},
			[2]string{"⭐⭐⭐", "yellow"},
			[2]string{"⭐⭐⭐⭐", "green"},
			[2]string{"⭐⭐⭐⭐⭐", "blue"},
		),
	}
}

func booksSchema() map[string]any {
	properties := commonProperties()
	properties["Author"] = map[string]any{"rich_text": map[string]any{}}
	properties["Genre"] = selectOptions(
		[2]string{"Fiction", "blue"},
		[2]string{"Non-Fiction", "green"},
		[2]string{"Biography", "purple"},
		[2]string{"Science", "red"},
		[2]string{"History", "orange"},
		[2]string{"Self-Help", "yellow"},
	)
	properties["Pages"] = map[string]any{"number": map[string]any{}}
	properties["Started Reading"] = map[string]any{"date": map[string]any{}}
	properties["Finished Reading"] = map[string]any{"date": map[string]any{}}
	properties["Recommendation Source"] = map[string]any{"rich_text": map[string]any{}}
	properties["Key Takeaways"] = map[string]any{"rich_text": map[string]any{}}
	return properties
}

func moviesSchema() map[string]any {
	properties := commonProperties()
	properties["Director"] = map[string]any{"rich_text": map[string]any{}}
	properties["Release Year"] = map[string]any{"number": map[string]any{}}
	properties["Genre"] = selectOptions(
		[2]string{"Drama", "blue"},
		[2]string{"Comedy", "yellow"},
		[2]string{"Action", "red"},
		[2]string{"Horror", "gray"},
		[2]string{"Documentary", "green"},
		[2]string{"Sci-Fi", "purple"},
	)
	properties["Runtime"] = map[string]any{"number": map[string]any{}}
	properties["Streaming Platform"] = selectOptions(
		[2]string{"Netflix", "red"},
		[2]string{"Amazon Prime", "blue"},
		[2]string{"Disney+", "purple"},
		[2]string{"HBO Max", "gray"},
		[2]string{"Hulu", "green"},
		[2]string{"Theater", "yellow"},
	)
	properties["Watched With"] = map[string]any{
		"multi_select": map[string]any{"options": []any{}},
	}
	return properties
}

// provisionSchema returns the creation schema for a generic category.
func provisionSchema(c Category) (map[string]any, bool) {
	switch c {
	case CategoryBooks:
		return booksSchema(), true
	case CategoryMovies:
		return moviesSchema(), true
	}
	return nil, false
}
