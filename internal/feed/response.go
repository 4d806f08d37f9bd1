package feed

// Response is the payload posted back to the feed when the user reacts to a
// wallpaper. The API key authenticates the link owner.
type Response struct {
	APIKey string `json:"api_key"`
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
}

// NewResponse builds a response of the given type with optional text.
func NewResponse(apiKey string, typ ResponseType, text string) *Response {
	return &Response{
		APIKey: apiKey,
		Type:   string(typ),
		Text:   text,
	}
}
