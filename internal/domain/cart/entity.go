// internal/domain/cart/entity.go
package cart

import "strings"

// Entry is one line of the cart: a snapshot of the catalog item at the time
// it was added. The cart keeps insertion order and allows duplicates (adding
// the same item twice yields two entries).
type Entry struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Rating    string `json:"rating"`
	Favorites string `json:"favorites"`
	Price     string `json:"price"`
	Details   string `json:"details"`
}

// Key returns the matching key used by Remove.
// ID when present; display name only for legacy entries persisted without one
// (name collisions conflate distinct items, so ID is the adopted key).
func (e Entry) Key() string {
	if id := strings.TrimSpace(e.ID); id != "" {
		return "id:" + id
	}
	return "name:" + strings.TrimSpace(e.Name)
}

func cloneEntries(src []Entry) []Entry {
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}
