package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"translated duplicate", gorm.ErrDuplicatedKey, isUniqueConstraintViolation, true},
		{"wrapped duplicate", errors.Wrap(gorm.ErrDuplicatedKey, "create"), isUniqueConstraintViolation, true},
		{"raw unique", errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`), isUniqueConstraintViolation, true},
		{"raw foreign key", errors.New(`ERROR: insert or update violates foreign key constraint (SQLSTATE 23503)`), isForeignKeyConstraintViolation, true},
		{"raw check", errors.New(`ERROR: new row violates check constraint "chk_reviews_rating" (SQLSTATE 23514)`), isCheckConstraintViolation, true},
		{"raw not null", errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`), isNotNullConstraintViolation, true},
		{"unique is not foreign key", gorm.ErrDuplicatedKey, isForeignKeyConstraintViolation, false},
		{"unrelated", errors.New("connection reset by peer"), isUniqueConstraintViolation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
