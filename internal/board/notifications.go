package board

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

func (b *Board) notify(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	b.Notifications = append(b.Notifications, n)
	klog.V(2).InfoS("added notification", "id", n.ID, "type", n.Type)
}

// Inbox returns the notifications, newest first.
func (b *Board) Inbox() []Notification {
	out := slices.Clone(b.Notifications)
	slices.SortStableFunc(out, func(x, y Notification) int { return y.Timestamp.Compare(x.Timestamp) })
	return out
}

// UnreadCount returns the number of unread notifications.
func (b *Board) UnreadCount() int {
	var n int
	for _, v := range b.Notifications {
		if !v.Read {
			n++
		}
	}
	return n
}

// MarkRead marks a single notification read. A unique id prefix is accepted.
func (b *Board) MarkRead(id string) error {
	i, err := b.notificationIndex(id)
	if err != nil {
		return err
	}
	b.Notifications[i].Read = true
	return nil
}

// MarkAllRead marks every notification read and returns how many changed.
func (b *Board) MarkAllRead() int {
	var n int
	for i := range b.Notifications {
		if !b.Notifications[i].Read {
			b.Notifications[i].Read = true
			n++
		}
	}
	return n
}

// DeleteNotification removes a notification. A unique id prefix is accepted.
func (b *Board) DeleteNotification(id string) error {
	i, err := b.notificationIndex(id)
	if err != nil {
		return err
	}
	b.Notifications = slices.Delete(b.Notifications, i, i+1)
	return nil
}

func (b *Board) notificationIndex(id string) (int, error) {
	ids := make([]string, len(b.Notifications))
	for i, n := range b.Notifications {
		ids[i] = n.ID
	}
	i, err := matchID(ids, id)
	if err != nil {
		return -1, fmt.Errorf("notification %q: %w", id, err)
	}
	return i, nil
}
