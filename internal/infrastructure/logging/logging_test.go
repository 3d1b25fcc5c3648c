package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOutput("debug", "json", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	Component(l, "order", "usecase").WithField("order_id", "o-1").Info("convert success")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order", line["component"])
	assert.Equal(t, "usecase", line["layer"])
	assert.Equal(t, "o-1", line["order_id"])
	assert.Equal(t, "convert success", line["msg"])
}

func TestNewWithOutput_Rejects(t *testing.T) {
	_, err := NewWithOutput("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithOutput("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
