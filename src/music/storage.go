package music

// Storage keys used by the playlist client.
const (
	LikedSongsKey = "likedSongs"
	ThemeKey      = "theme"
)

// LocalStorage is the durable key/value store a single client persists its preferences to.
// Implementations are scoped to one client.
type LocalStorage interface {
	// GetItem returns the stored value and whether the key was present.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
