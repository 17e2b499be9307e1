package board

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// NotificationType is the kind of event a Notification reports.
type NotificationType string

const (
	FoodPosted  NotificationType = "food_posted"
	FoodClaimed NotificationType = "food_claimed"
	FoodExpired NotificationType = "food_expired"
	System      NotificationType = "system"
	Feedback    NotificationType = "feedback"
)

// Listing is a food item someone shared on the board.
type Listing struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Quantity    string    `yaml:"quantity"`
	Location    string    `yaml:"location"`
	ExpiresAt   time.Time `yaml:"expiresAt"`
	PostedBy    string    `yaml:"postedBy"`
	PostedAt    time.Time `yaml:"postedAt,omitempty"`
	ImageURL    string    `yaml:"imageUrl,omitempty"`

	// ClaimedBy is empty while the listing is up for grabs.
	ClaimedBy string     `yaml:"claimedBy,omitempty"`
	ClaimedAt *time.Time `yaml:"claimedAt,omitempty"`

	// ExpiryNotified is set once the poster has been told the listing
	// expired unclaimed.
	ExpiryNotified bool `yaml:"expiryNotified,omitempty"`
}

// Claimed reports whether someone has claimed the listing.
func (l *Listing) Claimed() bool { return l.ClaimedBy != "" }

// Notification is an entry in the board owner's inbox.
type Notification struct {
	ID        string           `yaml:"id"`
	Type      NotificationType `yaml:"type"`
	Title     string           `yaml:"title"`
	Message   string           `yaml:"message"`
	Timestamp time.Time        `yaml:"timestamp"`
	Read      bool             `yaml:"read"`
	ActionURL string           `yaml:"actionUrl,omitempty"`
}

// Profile describes the board owner.
type Profile struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email,omitempty"`
	HostelBlock string `yaml:"hostelBlock,omitempty"`
	RoomNumber  string `yaml:"roomNumber,omitempty"`
	JoinedDate  string `yaml:"joinedDate,omitempty"`
}

// Initials returns the upper-cased first letter of each word in the name,
// e.g. "AS" for "Arjun Sharma".
func (p Profile) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(p.Name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Board is the full state of a food-sharing community as seen by its owner.
type Board struct {
	Profile       Profile        `yaml:"profile"`
	Listings      []Listing      `yaml:"listings"`
	Notifications []Notification `yaml:"notifications"`
}
