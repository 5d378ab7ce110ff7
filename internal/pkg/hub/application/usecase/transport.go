package usecase

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Transport is the delivery boundary the use cases emit through. It is
// implemented by the realtime router: per-connection delivery, named-channel
// fan-out, broadcast to all, and channel subscription management so the
// stored membership sets and the actual fan-out lists stay in sync.
type Transport interface {
	Send(connectionID string, payload []byte) bool
	Broadcast(channel string, payload []byte) int
	BroadcastAll(payload []byte) int
	Subscribe(channel, connectionID string)
	Unsubscribe(channel, connectionID string)
}

// CommunityChannel is the transport channel backing the community.
const CommunityChannel = "community"

// GroupChannel names the transport channel for a group.
func GroupChannel(groupID string) string {
	return "group-" + groupID
}

func encode(log *zap.Logger, v any) ([]byte, bool) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error("encode outbound event", zap.Error(err))
		return nil, false
	}
	return payload, true
}
