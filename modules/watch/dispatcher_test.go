package watch

import (
	"testing"

	"rezzy-api/modules/rezzy/entity"

	"github.com/stretchr/testify/assert"
)

func TestTaskIDFor(t *testing.T) {
	name := "Chez Panisse & Co."

	t.Run("Slugged Restaurant Name", func(t *testing.T) {
		rezzy := &entity.Rezzy{RestaurantName: &name, Reference: "aB3xY9z"}
		assert.Equal(t, "chez-panisse-and-co-aB3xY9z", TaskIDFor(rezzy))
	})

	t.Run("URL Only Request Falls Back", func(t *testing.T) {
		rezzy := &entity.Rezzy{Reference: "aB3xY9z"}
		assert.Equal(t, "rezzy-aB3xY9z", TaskIDFor(rezzy))
	})

	t.Run("Stable For Same Request", func(t *testing.T) {
		rezzy := &entity.Rezzy{RestaurantName: &name, Reference: "aB3xY9z"}
		assert.Equal(t, TaskIDFor(rezzy), TaskIDFor(rezzy))
	})
}
