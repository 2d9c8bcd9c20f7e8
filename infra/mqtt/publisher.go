package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/abrokate/powerplant-coding-challenge/core/plan"
	"github.com/abrokate/powerplant-coding-challenge/infra/logger"
)

// Config holds the settings of the plan broadcast publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "dispatch-service"
	}
	if c.Topic == "" {
		c.Topic = "powergrid/productionplan"
	}
}

// Validate checks mandatory fields when broadcasting is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	if c.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2")
	}
	return nil
}

// PlanMessage is the broadcast payload for one computed plan.
type PlanMessage struct {
	PlanID     string            `json:"plan_id"`
	Load       float64           `json:"load"`
	Strategy   string            `json:"strategy"`
	ComputedAt time.Time         `json:"computed_at"`
	Plan       []plan.Assignment `json:"plan"`
}

// Publisher broadcasts computed production plans to downstream consumers.
type Publisher interface {
	PublishPlan(msg PlanMessage) error
	Close() error
}

// pahoClient is the subset of the Paho client used by the publisher. It is
// narrowed to an interface so tests can substitute a fake.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// PahoPublisher implements Publisher on top of Eclipse Paho.
type PahoPublisher struct {
	cli    pahoClient
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

// NewPahoPublisher connects to the configured broker and returns a publisher.
func NewPahoPublisher(cfg Config, log logger.Logger) (*PahoPublisher, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true)
	cli := paho.NewClient(opts)
	tok := cli.Connect()
	tok.Wait()
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, err)
	}
	return &PahoPublisher{cli: cli, topic: cfg.Topic, qos: cfg.QoS, retain: cfg.Retain, log: log}, nil
}

// PublishPlan serializes and publishes one plan. Broadcast failures are
// reported to the caller but must never fail the originating request.
func (p *PahoPublisher) PublishPlan(msg PlanMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", msg.PlanID, err)
	}
	tok := p.cli.Publish(p.topic, p.qos, p.retain, payload)
	tok.Wait()
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish plan %s: %w", msg.PlanID, err)
	}
	p.log.Debugw("plan broadcast", map[string]any{"plan_id": msg.PlanID, "topic": p.topic})
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() error {
	if p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
	return nil
}
