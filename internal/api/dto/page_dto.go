package dto

// PageResponse is the envelope for paginated search results. Total reflects
// the filter, not the window.
type PageResponse struct {
	Records any   `json:"records"`
	Total   int64 `json:"total"`
}
