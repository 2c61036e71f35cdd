package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapter(t *testing.T) {
	log := NewLogrusAdapter("debug", "json")
	assert.NotNil(t, log)

	// Unknown level falls back to info rather than failing.
	log = NewLogrusAdapter("chatty", "text")
	assert.NotNil(t, log)
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapterFromLogger(logrus.New()))
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("started", F(FieldComponent, "test"))
	mock.Warn("degraded")

	assert.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "started"))
	assert.True(t, mock.HasEntry("WARN", "degraded"))
	assert.False(t, mock.HasEntry("ERROR", "degraded"))
	assert.Equal(t, "test", mock.Entries[0].Fields[0].Value)
}

func TestMockLoggerWithErrorAndField(t *testing.T) {
	mock := &MockLogger{}
	boom := errors.New("boom")

	mock.WithError(boom).Error("failed")
	mock.WithField(FieldReason, "sparse").Warn("skipping")

	assert.Len(t, mock.Entries, 2)
	assert.Equal(t, boom, mock.Entries[0].Error)
	assert.Equal(t, FieldReason, mock.Entries[1].Fields[0].Key)
	assert.Equal(t, "sparse", mock.Entries[1].Fields[0].Value)
}
