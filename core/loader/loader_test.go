package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "schema", enabled: true}
		off := &stubFeature{name: "integrity", enabled: false}

		m := NewManager()
		m.Register(on)
		m.Register(off)

		assert.NoError(t, m.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, m.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		bad := &stubFeature{name: "schema", enabled: true, err: errors.New("no store")}
		next := &stubFeature{name: "integrity", enabled: true}

		m := NewManager()
		m.Register(bad)
		m.Register(next)

		err := m.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature schema")
		assert.False(t, next.loaded)
	})
}
