// Package bucketlist implements the bucket list item feature.
//
// All durable item state lives in Notion databases; this package is the
// translation layer between the flat internal item shape and each category's
// Notion schema.
//
// # Components
//
//   - Mapper: category-aware transform from item payloads to Notion property
//     payloads. Legacy categories carry fixed field tables (with the original
//     Hebrew property names); books and movies classify fields by naming
//     convention.
//   - Provisioner: owns the category → database id mapping and creates the
//     lazily-provisioned databases from their declared schemas.
//   - Relations: heuristic parent/child matching for show → episodes and
//     country → cities, where the external schema has no reliable foreign
//     keys.
//   - Service: orchestrates CRUD, relation lookups and admin operations.
//   - Handler: exposes the HTTP endpoints.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST   /api/categories/:category/items       : create an item
//   - GET    /api/categories/:category/items       : list items
//   - PUT    /api/categories/:category/items/:id   : update an item
//   - DELETE /api/categories/:category/items/:id   : archive an item
//   - GET    /api/categories                       : category catalogue
//   - GET    /api/categories/tv_shows/items/:id/episodes
//   - GET    /api/categories/around_world/items/:id/cities
//   - POST   /api/admin/add-image-properties
package bucketlist
