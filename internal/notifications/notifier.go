// Package notifications delivers friend-request notices to interested parties.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"amity/internal/middleware"
	"amity/internal/models"
	"amity/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// InviteType is the wire type tag carried by friend-request notices.
const InviteType = "Invite"

// FriendRequestNotice is the payload delivered when a friend request is sent.
type FriendRequestNotice struct {
	SenderID     uuid.UUID `json:"senderId"`
	ReceiverID   uuid.UUID `json:"receiverId"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	CreatedAt    time.Time `json:"createdAt"`
	Type         string    `json:"typeDto"`
}

// NewFriendRequestNotice builds a notice for a request from sender to receiver.
func NewFriendRequestNotice(sender, receiver *models.User) FriendRequestNotice {
	return FriendRequestNotice{
		SenderID:     sender.ID,
		ReceiverID:   receiver.ID,
		SenderName:   sender.Nickname,
		ReceiverName: receiver.Nickname,
		CreatedAt:    time.Now().UTC(),
		Type:         InviteType,
	}
}

// Notifier delivers friend-request notices. Delivery is best effort: the
// request that triggered the notice must never fail because of it.
type Notifier interface {
	FriendRequestSent(ctx context.Context, notice FriendRequestNotice)
}

// WebhookNotifier posts notices to an HTTP endpoint and mirrors them onto
// the receiver's Redis notification channel when a client is available.
type WebhookNotifier struct {
	url    string
	client *http.Client
	rdb    *redis.Client
}

// NewWebhookNotifier creates a notifier for the given endpoint. An empty URL
// disables the HTTP leg; a nil Redis client disables the pub/sub leg.
func NewWebhookNotifier(url string, rdb *redis.Client) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		rdb:    rdb,
	}
}

// FriendRequestSent delivers the notice on both legs. Failures are logged
// and counted, never returned.
func (n *WebhookNotifier) FriendRequestSent(ctx context.Context, notice FriendRequestNotice) {
	payload, err := json.Marshal(notice)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "friend request notice marshal failed", "error", err)
		observability.NotificationFailures.Inc()
		return
	}

	if n.url != "" {
		if err := n.post(ctx, payload); err != nil {
			middleware.Logger.WarnContext(ctx, "friend request notice delivery failed",
				"receiver_id", notice.ReceiverID, "error", err)
			observability.NotificationFailures.Inc()
		}
	}

	if n.rdb != nil {
		channel := UserChannel(notice.ReceiverID)
		if err := n.rdb.Publish(ctx, channel, payload).Err(); err != nil {
			middleware.Logger.WarnContext(ctx, "friend request notice publish failed",
				"channel", channel, "error", err)
			observability.NotificationFailures.Inc()
		}
	}
}

func (n *WebhookNotifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uuid.UUID) string {
	return "notifications:user:" + userID.String()
}
