/*
Package bus adapts the gateway to an MQTT-based pub/sub broker. It owns
the connection lifecycle (connect, reconnect, disconnect), agent
identity presence (retained JOIN message plus a last-will LEAVE
message), and a circuit-breaker-guarded publish path so that a flapping
broker degrades gracefully instead of piling up blocked goroutines.

Topic-level fan-out is handled here rather than in the domain layer:
several gRPC observers may subscribe to the same bus topic (e.g. two
ObserveChannel calls for the same channel id), but paho's client keeps
one callback per Subscribe call against the broker. Client refcounts
subscriptions per topic and does exactly one broker-level SUBSCRIBE per
topic, fanning each inbound message out to every local subscriber.
*/
package bus

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// Identity is the agent's presence on the bus: a stable id and a human
// label, both configurable and both part of ConfigureOptions.
type Identity struct {
	ID   string
	Name string
}

// Options configures one Client instance. URL is empty means the bus
// is not started at all (autostart suppressed until configured).
type Options struct {
	URL               string
	Namespace         string
	Identity          Identity
	Username          string
	Password          string
	TLSCert           string
	TLSKey            string
	VerifyServerCert  bool
	FailFastIfOffline bool
}

// Message is one inbound payload delivered to a local subscriber.
type Message struct {
	Topic   string
	Payload []byte
}

// Subscription is a live local fan-out registration against one topic.
type Subscription struct {
	id    uuid.UUID
	topic string
	ch    chan Message
}

func (s *Subscription) C() <-chan Message { return s.ch }

// ErrOffline is returned by Publish when the bus is disconnected and
// the caller asked to fail fast.
var ErrOffline = errors.New("bus is offline")

type Client struct {
	opts   Options
	logger *slog.Logger

	mu        sync.Mutex
	mq        mqtt.Client
	connected bool

	subsByTopic map[string][]*Subscription

	breaker *gobreaker.CircuitBreaker
}

func New(opts Options, logger *slog.Logger) *Client {
	c := &Client{
		opts:        opts,
		logger:      logger,
		subsByTopic: make(map[string][]*Subscription),
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "bus-publish",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return c
}

// Connect dials the broker and announces this agent's presence with a
// retained JOIN message, arming a last-will LEAVE message for the case
// where the process dies without a clean Disconnect.
func (c *Client) Connect(ctx context.Context) error {
	if c.opts.URL == "" {
		return nil
	}

	mopts := mqtt.NewClientOptions().
		AddBroker(c.opts.URL).
		SetClientID(c.opts.Identity.ID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	if c.opts.Username != "" {
		mopts.SetUsername(c.opts.Username)
		mopts.SetPassword(c.opts.Password)
	}

	if tlsCfg, err := c.tlsConfig(); err != nil {
		return err
	} else if tlsCfg != nil {
		mopts.SetTLSConfig(tlsCfg)
	}

	leave, _ := json.Marshal(presenceEnvelope{Kind: "LEAVE", Name: c.opts.Identity.Name})
	mopts.SetBinaryWill(presenceTopic(c.opts.Namespace, c.opts.Identity.ID), leave, 1, true)

	mopts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		c.logger.Warn("bus connection lost", slog.Any("error", err))
	})
	mopts.SetOnConnectHandler(func(mq mqtt.Client) {
		c.mu.Lock()
		c.connected = true
		topics := make([]string, 0, len(c.subsByTopic))
		for t := range c.subsByTopic {
			topics = append(topics, t)
		}
		c.mu.Unlock()

		for _, t := range topics {
			c.subscribeOnBroker(mq, t)
		}

		join, _ := json.Marshal(presenceEnvelope{Kind: "JOIN", Name: c.opts.Identity.Name})
		mq.Publish(presenceTopic(c.opts.Namespace, c.opts.Identity.ID), 1, true, join)
	})

	c.mq = mqtt.NewClient(mopts)
	token := c.mq.Connect()
	if !token.WaitTimeout(15 * time.Second) {
		return context.DeadlineExceeded
	}
	return token.Error()
}

// Disconnect publishes a retained LEAVE message, then tears down the
// client. Quiesce is bounded so shutdown is never stuck on a slow
// broker.
func (c *Client) Disconnect() {
	c.mu.Lock()
	mq := c.mq
	c.connected = false
	c.mu.Unlock()

	if mq == nil || !mq.IsConnected() {
		return
	}

	leave, _ := json.Marshal(presenceEnvelope{Kind: "LEAVE", Name: c.opts.Identity.Name})
	tok := mq.Publish(presenceTopic(c.opts.Namespace, c.opts.Identity.ID), 1, true, leave)
	tok.WaitTimeout(2 * time.Second)

	mq.Disconnect(250)
}

func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) Namespace() string { return c.opts.Namespace }

func (c *Client) Identity() Identity { return c.opts.Identity }

func (c *Client) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Reconfigure replaces the client's options in place, for the case
// where only transport parameters (not identity) changed on a
// Configure call. Callers must Disconnect before and Connect after.
func (c *Client) Reconfigure(opts Options) {
	c.mu.Lock()
	c.opts = opts
	c.mu.Unlock()
}

// Publish writes payload to topic through the circuit breaker. When the
// bus is offline it fails immediately with ErrOffline rather than
// waiting for a broker timeout, regardless of failFast — the caller
// decides whether ErrOffline should become Unavailable or be ignored.
func (c *Client) Publish(topic string, payload []byte, retained bool) error {
	c.mu.Lock()
	mq, connected := c.mq, c.connected
	c.mu.Unlock()

	if !connected || mq == nil {
		return ErrOffline
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		token := mq.Publish(topic, 1, retained, payload)
		token.Wait()
		return nil, token.Error()
	})
	return err
}

// Subscribe registers a local fan-out channel for topic, issuing a
// broker-level SUBSCRIBE the first time any caller asks for that exact
// topic.
func (c *Client) Subscribe(topic string) *Subscription {
	sub := &Subscription{id: uuid.New(), topic: topic, ch: make(chan Message, 64)}

	c.mu.Lock()
	_, already := c.subsByTopic[topic]
	c.subsByTopic[topic] = append(c.subsByTopic[topic], sub)
	mq := c.mq
	c.mu.Unlock()

	if !already && mq != nil && mq.IsConnected() {
		c.subscribeOnBroker(mq, topic)
	}
	return sub
}

// Unsubscribe removes sub from the local fan-out table, issuing a
// broker-level UNSUBSCRIBE once the topic has no remaining listeners.
func (c *Client) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	list := c.subsByTopic[sub.topic]
	found := false
	for i, s := range list {
		if s.id == sub.id {
			list = append(list[:i], list[i+1:]...)
			found = true
			break
		}
	}
	empty := len(list) == 0
	if empty {
		delete(c.subsByTopic, sub.topic)
	} else {
		c.subsByTopic[sub.topic] = list
	}
	mq := c.mq
	c.mu.Unlock()

	// A subscription already ended by EndAllSubscriptions has had its
	// channel closed there; closing it again would panic.
	if !found {
		return
	}
	close(sub.ch)
	if empty && mq != nil && mq.IsConnected() {
		mq.Unsubscribe(sub.topic)
	}
}

// EndAllSubscriptions closes every local fan-out channel, used when the
// bus stops or is reconfigured so outstanding observation streams end
// cleanly rather than leak.
func (c *Client) EndAllSubscriptions() {
	c.mu.Lock()
	all := c.subsByTopic
	c.subsByTopic = make(map[string][]*Subscription)
	c.mu.Unlock()

	for _, list := range all {
		for _, sub := range list {
			close(sub.ch)
		}
	}
}

// DeliverForTest fans payload out to every local subscriber whose topic
// filter matches topic, as if it had arrived from the broker, without
// requiring a live MQTT connection. Filters are matched level by level
// with '+' as the single-level wildcard; '#' is not supported. It exists
// for tests that exercise subscriber behavior without standing up a
// broker.
func (c *Client) DeliverForTest(topic string, payload []byte) {
	levels := strings.Split(topic, "/")
	var subs []*Subscription
	c.mu.Lock()
	for filter, list := range c.subsByTopic {
		parts := strings.Split(filter, "/")
		match := len(parts) == len(levels)
		for i := 0; match && i < len(parts); i++ {
			match = parts[i] == "+" || parts[i] == levels[i]
		}
		if match {
			subs = append(subs, list...)
		}
	}
	c.mu.Unlock()

	msg := Message{Topic: topic, Payload: payload}
	for _, sub := range subs {
		select {
		case sub.ch <- msg:
		default:
		}
	}
}

// HasSubscriber reports whether any local subscriber is currently
// registered for topic. It exists for tests that race a goroutine's
// Subscribe call against delivering a synthetic message to it.
func (c *Client) HasSubscriber(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subsByTopic[topic]) > 0
}

func (c *Client) subscribeOnBroker(mq mqtt.Client, topic string) {
	mq.Subscribe(topic, 1, func(_ mqtt.Client, m mqtt.Message) {
		// Local subscribers are keyed by the filter they subscribed
		// with, which for a wildcard filter differs from m.Topic().
		c.mu.Lock()
		subs := append([]*Subscription(nil), c.subsByTopic[topic]...)
		c.mu.Unlock()

		msg := Message{Topic: m.Topic(), Payload: m.Payload()}
		for _, sub := range subs {
			select {
			case sub.ch <- msg:
			default:
			}
		}
	})
}

func (c *Client) tlsConfig() (*tls.Config, error) {
	if c.opts.TLSCert == "" && c.opts.TLSKey == "" {
		if !c.opts.VerifyServerCert {
			return &tls.Config{InsecureSkipVerify: true}, nil
		}
		return nil, nil
	}

	cert, err := tls.X509KeyPair([]byte(c.opts.TLSCert), []byte(c.opts.TLSKey))
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates:       []tls.Certificate{cert},
		InsecureSkipVerify: !c.opts.VerifyServerCert,
		RootCAs:            x509.NewCertPool(),
	}, nil
}

// PresenceEnvelope is the retained/will payload published to a presence
// topic. Exported so subscribers on the wildcard presence topic (the
// lifecycle tracker) can decode it without duplicating the shape.
type PresenceEnvelope struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type presenceEnvelope = PresenceEnvelope
