package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("Matching Constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "rezzys_user_email_key"}
		assert.True(t, IsUniqueViolation(err, "rezzys_user_email_key"))
	})

	t.Run("Wrapped Error", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23505", Constraint: "rezzys_user_email_key"}
		wrapped := errors.Join(errors.New("insert failed"), pqErr)
		assert.True(t, IsUniqueViolation(wrapped, "rezzys_user_email_key"))
	})

	t.Run("Different Constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "users_email_key"}
		assert.False(t, IsUniqueViolation(err, "rezzys_user_email_key"))
	})

	t.Run("Different Code", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: "rezzys_user_email_key"}
		assert.False(t, IsUniqueViolation(err, "rezzys_user_email_key"))
	})

	t.Run("Plain Error", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(errors.New("connection refused"), "rezzys_user_email_key"))
	})

	t.Run("Nil Error", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil, "rezzys_user_email_key"))
	})
}
