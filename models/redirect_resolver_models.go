package models

// ResolveRedirectRequest defines the expected JSON body or query parameters.
// Bounds are optional and can only tighten the server defaults.
type ResolveRedirectRequest struct {
	URL          string `json:"url" form:"url" binding:"required,url"`
	MaxRedirects int    `json:"max_redirects,omitempty" form:"max_redirects" binding:"omitempty,min=1"`
	MaxBodySize  int64  `json:"max_body_size,omitempty" form:"max_body_size" binding:"omitempty,min=1"`
}

// RedirectHop is one fetch of the resolved chain.
type RedirectHop struct {
	URL        SafeURLString `json:"url"`
	StatusCode int           `json:"status_code"`
	Location   SafeURLString `json:"location,omitempty"`
}

// ResolveRedirectResponse defines the JSON output
type ResolveRedirectResponse struct {
	OriginalURL SafeURLString `json:"original_url"`
	FinalURL    SafeURLString `json:"final_url,omitempty"`
	Hops        []RedirectHop `json:"hops,omitempty"`
	Error       string        `json:"error,omitempty"`
	ErrorCode   string        `json:"error_code,omitempty"`
}
