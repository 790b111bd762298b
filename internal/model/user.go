package model

type User struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Pin            string  `json:"pin"`
	// nil means the user has no pinned products.
	PinnedProductIDs []int64 `json:"pinnedProductIds,omitempty"`
}
