package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("existing env var", func(t *testing.T) {
		t.Setenv("TEST_KEY", "test_value")

		result := GetEnv("TEST_KEY", "default")
		assert.Equal(t, "test_value", result)
	})

	t.Run("missing env var", func(t *testing.T) {
		result := GetEnv("TEST_KEY_MISSING", "default")
		assert.Equal(t, "default", result)
	})

	t.Run("empty env var falls back to default", func(t *testing.T) {
		t.Setenv("TEST_KEY_EMPTY", "")

		result := GetEnv("TEST_KEY_EMPTY", "default")
		assert.Equal(t, "default", result)
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("valid integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")

		result := GetEnvInt("TEST_INT", 0)
		assert.Equal(t, 42, result)
	})

	t.Run("invalid integer falls back to default", func(t *testing.T) {
		t.Setenv("TEST_INT", "not_a_number")

		result := GetEnvInt("TEST_INT", 10)
		assert.Equal(t, 10, result)
	})

	t.Run("missing integer", func(t *testing.T) {
		result := GetEnvInt("TEST_INT_MISSING", 7)
		assert.Equal(t, 7, result)
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Run("true values", func(t *testing.T) {
		for _, value := range []string{"true", "1", "TRUE", "t"} {
			t.Setenv("TEST_BOOL", value)
			assert.True(t, GetEnvBool("TEST_BOOL", false), "value: %s", value)
		}
	})

	t.Run("false values", func(t *testing.T) {
		for _, value := range []string{"false", "0", "FALSE"} {
			t.Setenv("TEST_BOOL", value)
			assert.False(t, GetEnvBool("TEST_BOOL", true), "value: %s", value)
		}
	})

	t.Run("invalid value falls back to default", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "yes please")
		assert.True(t, GetEnvBool("TEST_BOOL", true))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "5s")

		result := GetEnvDuration("TEST_DURATION", time.Minute)
		assert.Equal(t, 5*time.Second, result)
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "not_a_duration")

		result := GetEnvDuration("TEST_DURATION", time.Minute)
		assert.Equal(t, time.Minute, result)
	})
}

func TestGetEnvList(t *testing.T) {
	t.Run("comma separated values", func(t *testing.T) {
		t.Setenv("TEST_LIST", "a@x.dev, b@x.dev ,c@x.dev")

		result := GetEnvList("TEST_LIST", nil)
		assert.Equal(t, []string{"a@x.dev", "b@x.dev", "c@x.dev"}, result)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		t.Setenv("TEST_LIST", "a@x.dev,, ,b@x.dev")

		result := GetEnvList("TEST_LIST", nil)
		assert.Equal(t, []string{"a@x.dev", "b@x.dev"}, result)
	})

	t.Run("missing list returns default", func(t *testing.T) {
		result := GetEnvList("TEST_LIST_MISSING", []string{"fallback"})
		assert.Equal(t, []string{"fallback"}, result)
	})
}
