package session

import (
	"slices"
	"sync"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/google/uuid"
)

// MaxViewedProducts caps the recently-viewed list.
const MaxViewedProducts = 5

// Session holds the per-visit browsing state that is not the cart: favorite
// and comparison product ids, recently viewed products and the notification
// feed. It is owned by the server and passed explicitly to its consumers.
type Session struct {
	mu            sync.Mutex
	favorites     []int64
	compare       []int64
	viewed        []int64
	notifications []domain.Notification
}

func New() *Session {
	return &Session{}
}

// ToggleFavorite adds the product to favorites, or removes it when already
// present. Returns true when the product ends up favorited.
func (s *Session) ToggleFavorite(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites, _ = toggle(s.favorites, productID)
	return slices.Contains(s.favorites, productID)
}

// Favorites returns the favorited product ids.
func (s *Session) Favorites() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

// ToggleCompare adds the product to the comparison list, or removes it when
// already present. Returns true when the product ends up listed.
func (s *Session) ToggleCompare(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare, _ = toggle(s.compare, productID)
	return slices.Contains(s.compare, productID)
}

// Compare returns the product ids queued for comparison.
func (s *Session) Compare() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.compare)
}

// MarkViewed records a product view. The list is most-recent-first, holds no
// duplicates and keeps at most MaxViewedProducts entries.
func (s *Session) MarkViewed(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.viewed, productID); i >= 0 {
		s.viewed = slices.Delete(s.viewed, i, i+1)
	}
	s.viewed = append([]int64{productID}, s.viewed...)
	if len(s.viewed) > MaxViewedProducts {
		s.viewed = s.viewed[:MaxViewedProducts]
	}
}

// Viewed returns the recently viewed product ids, most recent first.
func (s *Session) Viewed() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.viewed)
}

// Notify prepends a notification to the feed.
func (s *Session) Notify(typ, message, severity string) domain.Notification {
	n := domain.Notification{
		ID:       uuid.New().String(),
		Type:     typ,
		Message:  message,
		Severity: severity,
		Time:     time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]domain.Notification{n}, s.notifications...)
	return n
}

// Notifications returns the feed, newest first.
func (s *Session) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notifications)
}

func toggle(ids []int64, id int64) ([]int64, bool) {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1), false
	}
	return append(ids, id), true
}
