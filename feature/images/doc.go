// Package images serves Notion-hosted images through an authenticated proxy.
//
// Notion wraps externally hosted images in signed URLs under
// https://www.notion.so/image/ that browsers cannot fetch directly. The proxy
// unwraps the original upstream URL and fetches it, falling back to the
// wrapper URL with API credentials when the upstream refuses the request.
//
// Endpoint:
//   - GET /api/proxy-image?url=<wrapped-url>
package images
