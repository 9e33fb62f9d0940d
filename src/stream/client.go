package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/quantgate/marketdata/src/marketmodels"
)

const readDeadline = 30 * time.Second

// Client is a websocket feed client for the options cluster. Channels are
// addressed with canonical option symbols, e.g. T.O:SPY251219C00650500.
// One Listen loop owns the connection; it is not safe to run two.
type Client struct {
	url    string
	apiKey string

	conn          *websocket.Conn
	subscriptions []string
}

func Connect(wsURL string, apiKey string) (*Client, error) {
	c := &Client{url: wsURL, apiKey: apiKey}

	conn, err := c.dial()
	if err != nil {
		return nil, fmt.Errorf("Connect: %w", err)
	}

	c.conn = conn
	return c, nil
}

func (c *Client) dial() (*websocket.Conn, error) {
	log.Infof("connecting to %s", c.url)

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	if conn == nil {
		return nil, fmt.Errorf("dial: connection is nil")
	}

	auth := controlMessageDTO{Action: "auth", Params: c.apiKey}
	if err := conn.WriteJSON(auth); err != nil {
		conn.Close()
		return nil, fmt.Errorf("dial: failed to write auth message: %w", err)
	}

	return conn, nil
}

func (c *Client) subscribe(prefix string, symbols []marketmodels.OptionSymbol) error {
	channels := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, err := marketmodels.NewOptionTicker(s); err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}

		channels = append(channels, fmt.Sprintf("%s.%s", prefix, s))
	}

	params := strings.Join(channels, ",")
	msg := controlMessageDTO{Action: "subscribe", Params: params}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("subscribe: failed to write json: %v, using params %v", err, params)
	}

	c.subscriptions = append(c.subscriptions, channels...)
	return nil
}

func (c *Client) SubscribeTrades(symbols ...marketmodels.OptionSymbol) error {
	return c.subscribe("T", symbols)
}

func (c *Client) SubscribeQuotes(symbols ...marketmodels.OptionSymbol) error {
	return c.subscribe("Q", symbols)
}

// reconnect re-dials and replays the subscription set.
func (c *Client) reconnect() error {
	conn, err := c.dial()
	if err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	if err := c.conn.Close(); err != nil {
		log.Errorf("reconnect: error closing old connection: %v", err)
	}

	c.conn = conn

	if len(c.subscriptions) > 0 {
		msg := controlMessageDTO{Action: "subscribe", Params: strings.Join(c.subscriptions, ",")}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("reconnect: failed to resubscribe: %w", err)
		}
	}

	return nil
}

// Listen reads events onto ch until ctx is cancelled, reconnecting on read
// failures.
func (c *Client) Listen(ctx context.Context, ch chan<- EventDTO) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			c.conn.SetReadDeadline(time.Now().UTC().Add(readDeadline))
			_, message, err := c.conn.ReadMessage()
			if err != nil {
				log.Errorf("Listen: ReadMessage(): %v", err)

				if reconnErr := c.reconnect(); reconnErr != nil {
					log.Errorf("Listen: failed to reconnect: %v", reconnErr)
				}

				continue
			}

			var events []EventDTO
			if err := json.Unmarshal(message, &events); err != nil {
				log.Errorf("Listen: failed to unmarshal json: %v", err)
				continue
			}

			for _, ev := range events {
				if ev.EventType == "status" {
					log.Infof("Listen: status %v: %v", ev.Status, ev.Message)
					continue
				}

				select {
				case ch <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
