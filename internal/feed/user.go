package feed

// User is the public record of a feed account.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	SetToPublic bool    `json:"set_to_public,omitempty"`
	Online      *bool   `json:"online,omitempty"`
	LinkIDs     []int64 `json:"link_ids,omitempty"`
}
