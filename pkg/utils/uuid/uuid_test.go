package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUUID4(t *testing.T) {
	id := GenUUID4()
	assert.Len(t, id, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", id)
	assert.NotEqual(t, id, GenUUID4())
}
