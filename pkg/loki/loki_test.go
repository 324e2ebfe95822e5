package loki

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type MockLogger struct{}

func (m *MockLogger) Error(msg string, args ...any) {
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &MockLogger{})
	assert.Error(t, err)

	cfg.URL = "SomeUrl"
	client, err := New(context.Background(), cfg, &MockLogger{})
	assert.NoError(t, err)
	assert.Equal(t, cfg.URL, client.config.URL)
	assert.Equal(t, 1000, client.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, client.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, client.config.Labels)
	client.Stop()
}

func Test_PushAfterStop_DoesNotBlock(t *testing.T) {
	client, err := New(context.Background(), Config{URL: "SomeUrl"}, &MockLogger{})
	assert.NoError(t, err)

	client.Stop()

	pushed := make(chan error, 1)
	go func() {
		pushed <- client.Push(Entry{Level: "info", Message: "too late"})
	}()

	select {
	case err := <-pushed:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("push blocked after stop")
	}
}
