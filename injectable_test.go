package injectable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}

func TestSetDefault_Restore(t *testing.T) {
	original := Default()
	replacement := New(WithName("replacement"))

	restore := SetDefault(replacement)
	assert.Same(t, replacement, Default())

	restore()
	assert.Same(t, original, Default())
}

func TestSetDefault_Nil(t *testing.T) {
	original := Default()

	restore := SetDefault(nil)
	defer restore()

	assert.NotNil(t, Default())
	assert.NotSame(t, original, Default())
}

func TestSetDefaultApplicationScope(t *testing.T) {
	original := DefaultApplicationScope()
	scope := NewCacheScope()
	c := New()

	restore := SetDefaultApplicationScope(scope)
	assert.Same(t, scope, DefaultApplicationScope())
	assert.Same(t, scope, c.Application())

	restore()
	assert.Same(t, original, DefaultApplicationScope())
	assert.Same(t, original, c.Application())
}

func TestSetDefaultApplicationScope_Nil(t *testing.T) {
	restore := SetDefaultApplicationScope(nil)
	defer restore()

	assert.NotNil(t, DefaultApplicationScope())
}

func TestDefaultContainer_OverrideAndReset(t *testing.T) {
	restore := SetDefault(New())
	defer restore()

	Register(Default(), func() myServiceType { return newMockService() })
	assert.Equal(t, "MockService", Resolve(Default(), myServicePath).Text())

	Default().Reset()
	assert.Equal(t, "MyService", Resolve(Default(), myServicePath).Text())
}
