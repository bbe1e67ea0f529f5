package logging_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilrsa/internal/logging"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("info", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.WithField("id", "abc").Info("hello")
	log.Debug("hidden")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "id=abc")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DefaultLevel(t *testing.T) {
	log, err := logging.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("loud", nil)
	assert.Error(t, err)
}
