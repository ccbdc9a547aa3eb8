package sl_test

import (
	"errors"
	"testing"

	"github.com/ogurasousui/codex-hr-roster/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	attr := sl.Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.Empty(t, sl.Err(nil).Value.String())
}
