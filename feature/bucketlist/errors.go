package bucketlist

import "fmt"

// ValidationError reports malformed input, rejected before any outbound call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// UnknownCategoryError reports a category this backend does not serve, or a
// legacy category whose database id was never configured.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %s", e.Category)
}

// NotProvisionedError reports a recognized category whose database does not
// exist yet.
type NotProvisionedError struct {
	Category Category
}

func (e *NotProvisionedError) Error() string {
	return fmt.Sprintf("the %s database is not set up yet. Please contact your administrator to configure the %s database in Notion",
		e.Category, e.Category.DisplayName())
}
