// Package notion provides a thin client for the Notion HTTP API.
//
// It wraps the raw REST endpoints behind a small Client interface covering
// the operations the bucket list backend needs: querying databases, page
// CRUD, and one-time database creation. The abstraction makes it easy to
// mock Notion interactions in unit tests (see core/notion/mocks).
//
// # Retry Behaviour
//
// Every request carries bearer-token auth and the Notion-Version header.
// Rate-limited responses (429) honour the Retry-After header when present
// and otherwise back off exponentially; transient network and server
// failures use the same backoff. After the retry budget is spent the
// client returns a *RateLimitedError or *UpstreamError carrying the last
// observed status code.
//
// # Pagination
//
// QueryDatabase drains Notion's cursor pagination transparently: pages are
// fetched until the store reports no more results or the caller's limit is
// reached. Results are returned already simplified (see Record).
//
// # Usage
//
//	client := notion.NewClient(cfg, logg)
//	res, err := client.QueryDatabase(ctx, dbID, 100)
package notion
