package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ahmetb/foodshare/internal/freshness"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

// PickupWindow is how long a claimant has to collect the food.
const PickupWindow = 3 * time.Hour

// Filter selects listings for Browse.
type Filter struct {
	// Query is matched case-insensitively against title and description.
	Query string
	// AvailableOnly hides expired listings.
	AvailableOnly bool
	Now           time.Time
}

// MatchesQuery reports whether the listing's title or description contains
// query, ignoring case. An empty query matches everything.
func MatchesQuery(l Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

// Browse returns the unclaimed listings matching f, soonest expiry first.
func (b *Board) Browse(f Filter) []Listing {
	var out []Listing
	for _, l := range b.Listings {
		if l.Claimed() || !MatchesQuery(l, f.Query) {
			continue
		}
		if f.AvailableOnly && freshness.IsExpired(freshness.ComputeExpiry(l.ExpiresAt, f.Now)) {
			continue
		}
		out = append(out, l)
	}
	slices.SortStableFunc(out, func(x, y Listing) int { return x.ExpiresAt.Compare(y.ExpiresAt) })
	return out
}

// Find returns the listing with the given id. A unique id prefix is also
// accepted.
func (b *Board) Find(id string) (*Listing, error) {
	i, err := b.indexOf(id)
	if err != nil {
		return nil, err
	}
	return &b.Listings[i], nil
}

func (b *Board) indexOf(id string) (int, error) {
	ids := make([]string, len(b.Listings))
	for i, l := range b.Listings {
		ids[i] = l.ID
	}
	i, err := matchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("listing %q: %w", id, err)
	}
	return i, nil
}

// matchID returns the index of id in ids, falling back to the only entry
// that has id as a prefix.
func matchID(ids []string, id string) (int, error) {
	if id == "" {
		return -1, ErrNotFound
	}
	match, n := -1, 0
	for i, v := range ids {
		if v == id {
			return i, nil
		}
		if strings.HasPrefix(v, id) {
			match = i
			n++
		}
	}
	switch {
	case n == 0:
		return -1, ErrNotFound
	case n > 1:
		return -1, ErrAmbiguousID
	}
	return match, nil
}

// Post validates d and adds it to the board as a new listing.
func (b *Board) Post(d Draft, now time.Time) (Listing, error) {
	if err := d.Validate(); err != nil {
		return Listing{}, fmt.Errorf("invalid listing: %w", err)
	}
	l := Listing{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Quantity:    strings.TrimSpace(d.Quantity),
		Location:    strings.TrimSpace(d.Location),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		PostedBy:    strings.TrimSpace(d.PostedBy),
		PostedAt:    now,
		ExpiresAt:   now.Add(d.Expiry()),
	}
	b.Listings = append(b.Listings, l)
	klog.V(1).InfoS("posted listing", "id", l.ID, "title", l.Title, "expiresAt", l.ExpiresAt)

	if b.Profile.Name != "" && !b.ownedByOwner(l) {
		b.notify(Notification{
			Type:      FoodPosted,
			Title:     "New Food Available",
			Message:   fmt.Sprintf("%s has been posted at %s", l.Title, l.Location),
			Timestamp: now,
			ActionURL: "/",
		})
	}
	return l, nil
}

// CanClaim returns the listing claimant could claim at now, or why they
// cannot: ErrOwnListing, ErrAlreadyClaimed or ErrExpired, checked in that
// order.
func (b *Board) CanClaim(id, claimant string, now time.Time) (*Listing, error) {
	l, err := b.Find(id)
	if err != nil {
		return nil, err
	}
	switch {
	case l.PostedBy == claimant:
		return nil, fmt.Errorf("claim %q: %w", l.Title, ErrOwnListing)
	case l.Claimed():
		return nil, fmt.Errorf("claim %q: %w", l.Title, ErrAlreadyClaimed)
	case freshness.IsExpired(freshness.ComputeExpiry(l.ExpiresAt, now)):
		return nil, fmt.Errorf("claim %q: %w", l.Title, ErrExpired)
	}
	return l, nil
}

// Claim marks the listing as claimed by claimant.
func (b *Board) Claim(id, claimant string, now time.Time) (Listing, error) {
	l, err := b.CanClaim(id, claimant, now)
	if err != nil {
		return Listing{}, err
	}

	l.ClaimedBy = claimant
	l.ClaimedAt = ptr.To(now)
	klog.V(1).InfoS("claimed listing", "id", l.ID, "claimant", claimant)

	if b.ownedByOwner(*l) {
		b.notify(Notification{
			Type:      FoodClaimed,
			Title:     "Your Food Was Claimed",
			Message:   fmt.Sprintf("%s has been claimed by %s", l.Title, claimant),
			Timestamp: now,
			ActionURL: "/profile",
		})
	}
	return *l, nil
}

// DeletePost removes a listing. Only its poster may do so.
func (b *Board) DeletePost(id, user string) (Listing, error) {
	i, err := b.indexOf(id)
	if err != nil {
		return Listing{}, err
	}
	l := b.Listings[i]
	if l.PostedBy != user {
		return Listing{}, fmt.Errorf("delete %q: %w", l.Title, ErrNotOwner)
	}
	b.Listings = slices.Delete(b.Listings, i, i+1)
	klog.V(1).InfoS("deleted listing", "id", l.ID)
	return l, nil
}

// Posted returns the listings user shared, newest first.
func (b *Board) Posted(user string) []Listing {
	return b.collect(func(l Listing) bool { return l.PostedBy == user })
}

// Claimed returns the listings user claimed, most recently claimed first.
func (b *Board) Claimed(user string) []Listing {
	out := b.collect(func(l Listing) bool { return l.ClaimedBy == user })
	slices.SortStableFunc(out, func(x, y Listing) int {
		return ptr.Deref(y.ClaimedAt, time.Time{}).Compare(ptr.Deref(x.ClaimedAt, time.Time{}))
	})
	return out
}

func (b *Board) collect(keep func(Listing) bool) []Listing {
	var out []Listing
	for _, l := range b.Listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(x, y Listing) int { return y.PostedAt.Compare(x.PostedAt) })
	return out
}

// Sweep reports the owner's listings that expired unclaimed. Each listing is
// reported once. Returns the number of new reports.
func (b *Board) Sweep(now time.Time) int {
	var n int
	for i := range b.Listings {
		l := &b.Listings[i]
		if l.Claimed() || l.ExpiryNotified || !b.ownedByOwner(*l) {
			continue
		}
		if !freshness.IsExpired(freshness.ComputeExpiry(l.ExpiresAt, now)) {
			continue
		}
		l.ExpiryNotified = true
		b.notify(Notification{
			Type:      FoodExpired,
			Title:     "Food Post Expired",
			Message:   fmt.Sprintf("Your %s post has expired and is no longer visible", l.Title),
			Timestamp: now,
		})
		n++
	}
	if n > 0 {
		klog.V(1).InfoS("reported expired listings", "count", n)
	}
	return n
}

func (b *Board) ownedByOwner(l Listing) bool {
	return b.Profile.Name != "" && l.PostedBy == b.Profile.Name
}
