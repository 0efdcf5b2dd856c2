package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIsDeterministic(t *testing.T) {
	a := String("foo")
	b := String("foo")
	assert.Equal(t, a, b)
}

func TestStringDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, String("foo"), String("bar"))
}

func TestBytesMatchesString(t *testing.T) {
	assert.Equal(t, String("foo"), Bytes([]byte("foo")))
}
