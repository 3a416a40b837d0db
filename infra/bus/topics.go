package bus

import (
	"fmt"
	"strings"
)

// Topic naming keeps every event kind under the configured namespace so
// that multiple gateway deployments can share a broker without
// colliding. The shapes mirror the bus patterns from the component
// design: one-way Channel multicast, and Call/Return/Complete for the
// two-way pattern. Exported as methods on Client so callers never
// hand-format a topic string themselves.
func channelTopic(namespace, id string) string {
	return fmt.Sprintf("%s/channel/%s", namespace, id)
}

func callTopic(namespace, operation string) string {
	return fmt.Sprintf("%s/call/%s", namespace, operation)
}

func returnTopic(namespace, operation, correlationID string) string {
	return fmt.Sprintf("%s/return/%s/%s", namespace, operation, correlationID)
}

func completeTopic(namespace, operation, correlationID string) string {
	return fmt.Sprintf("%s/complete/%s/%s", namespace, operation, correlationID)
}

func presenceTopic(namespace, identityID string) string {
	return fmt.Sprintf("%s/presence/%s", namespace, identityID)
}

func presenceWildcard(namespace string) string {
	return fmt.Sprintf("%s/presence/+", namespace)
}

func (c *Client) ChannelTopic(id string) string { return channelTopic(c.opts.Namespace, id) }

func (c *Client) CallTopic(operation string) string { return callTopic(c.opts.Namespace, operation) }

func (c *Client) ReturnTopic(operation, correlationID string) string {
	return returnTopic(c.opts.Namespace, operation, correlationID)
}

func (c *Client) CompleteTopic(operation, correlationID string) string {
	return completeTopic(c.opts.Namespace, operation, correlationID)
}

func (c *Client) PresenceTopic(identityID string) string {
	return presenceTopic(c.opts.Namespace, identityID)
}

func (c *Client) PresenceWildcard() string { return presenceWildcard(c.opts.Namespace) }

// ParsePresenceIdentity extracts the identity id from an inbound
// presence topic, so subscribers to the wildcard topic can tell whose
// presence just changed without re-parsing the namespace themselves.
func (c *Client) ParsePresenceIdentity(topic string) (string, bool) {
	prefix := c.opts.Namespace + "/presence/"
	if !strings.HasPrefix(topic, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(topic, prefix)
	if id == "" {
		return "", false
	}
	return id, true
}
