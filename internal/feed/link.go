package feed

import "encoding/json"

// ResponseType is the reaction a user can post for a link. Unknown values
// coming from the server are preserved as-is rather than rejected, so new
// server-side types do not break older clients.
type ResponseType string

const (
	ResponseLove    ResponseType = "love"
	ResponseDislike ResponseType = "dislike"
	ResponseSkip    ResponseType = "skip"
)

// Known reports whether t is one of the response types this client defines.
func (t ResponseType) Known() bool {
	switch t {
	case ResponseLove, ResponseDislike, ResponseSkip:
		return true
	default:
		return false
	}
}

// Link is one feed record: the wallpaper currently assigned to a link id,
// plus the metadata the server publishes about it.
type Link struct {
	ID               int64         `json:"id"`
	Expires          string        `json:"expires,omitempty"`
	Username         string        `json:"username"`
	Terms            string        `json:"terms,omitempty"`
	Blacklist        string        `json:"blacklist,omitempty"`
	PostURL          string        `json:"post_url,omitempty"`
	PostThumbnailURL string        `json:"post_thumbnail_url,omitempty"`
	PostDescription  string        `json:"post_description,omitempty"`
	CreatedAt        string        `json:"created_at,omitempty"`
	UpdatedAt        string        `json:"updated_at,omitempty"`
	SetBy            string        `json:"set_by,omitempty"`
	ResponseType     *ResponseType `json:"response_type,omitempty"`
	ResponseText     string        `json:"response_text,omitempty"`
	Online           *bool         `json:"online,omitempty"`
}

// HasPost reports whether the link currently carries a wallpaper.
func (l *Link) HasPost() bool { return l.PostURL != "" }

// SetByName returns the name of whoever set the current wallpaper, or
// "unknown" when the server omitted it.
func (l *Link) SetByName() string {
	if l.SetBy == "" {
		return "unknown"
	}
	return l.SetBy
}

// String renders the link compactly for logs.
func (l *Link) String() string {
	b, err := json.Marshal(l)
	if err != nil {
		return "<invalid link>"
	}
	return string(b)
}
