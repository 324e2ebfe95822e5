package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives the client's own failures, so a broken Loki endpoint never
// recurses into the hook that feeds this client.
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// URL of the push endpoint, e.g. https://loki.example.net/loki/api/v1/push
	URL string `validate:"required"`

	// Username/Password enable basic auth when non-empty.
	Username string
	Password string

	// Labels are attached to every pushed stream.
	Labels map[string]string

	// BatchMaxSize is the number of entries that forces a flush.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait caps how long an entry may sit unflushed.
	BatchMaxWait time.Duration `validate:"gte=1"`
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type Entry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type Client struct {
	config  *Config
	ctx     context.Context
	cancel  context.CancelFunc
	client  *http.Client
	entries chan Entry
	quit    chan struct{}
	wg      sync.WaitGroup
	batch   [][2]string
	logger  Logger
}

type pushRequest struct {
	Streams []pushStream `json:"streams"`
}

type pushStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func New(ctx context.Context, cfg Config, logger Logger) (*Client, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &Client{
		config:  &cfg,
		ctx:     ctx,
		cancel:  cancel,
		client:  &http.Client{},
		entries: make(chan Entry),
		quit:    make(chan struct{}),
		batch:   make([][2]string, 0, cfg.BatchMaxSize),
		logger:  logger,
	}

	c.wg.Add(1)
	go c.run()
	return c, nil
}

// Push queues a log entry for the next batch. Once the client is stopped
// the entry is rejected instead of blocking on the drained channel.
func (c *Client) Push(e Entry) error {
	select {
	case c.entries <- e:
		return nil
	case <-c.quit:
		return fmt.Errorf("loki client is stopped")
	case <-c.ctx.Done():
		return c.ctx.Err()
	}
}

// Stop flushes what is queued and shuts the background loop down.
func (c *Client) Stop() {
	close(c.quit)
	c.wg.Wait()
	c.cancel()
}

func (c *Client) run() {
	ticker := time.NewTicker(c.config.BatchMaxWait)
	defer ticker.Stop()

	flush := func() {
		if len(c.batch) == 0 {
			return
		}
		if err := c.send(); err != nil {
			c.logger.Error("failed to send logs to loki", "error", err)
		}
		c.batch = c.batch[:0]
	}

	defer func() {
		flush()
		c.wg.Done()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.quit:
			return
		case entry := <-c.entries:
			line, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			stamp := strconv.FormatInt(time.Now().UnixNano(), 10)
			c.batch = append(c.batch, [2]string{stamp, string(line)})
			if len(c.batch) >= c.config.BatchMaxSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (c *Client) send() error {
	buf := bytes.NewBuffer(nil)
	gz := gzip.NewWriter(buf)

	err := json.NewEncoder(gz).Encode(pushRequest{Streams: []pushStream{{
		Stream: c.config.Labels,
		Values: c.batch,
	}}})
	if err != nil {
		return err
	}
	if err = gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.config.URL, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	if c.config.Username != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected loki response status: %s", resp.Status)
	}
	return nil
}
