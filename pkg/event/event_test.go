package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireCallsListenersInOrder(t *testing.T) {
	b := New()
	var got []string
	b.Listen("dish.created", func(p any) { got = append(got, "first:"+p.(string)) })
	b.Listen("dish.created", func(p any) { got = append(got, "second:"+p.(string)) })
	b.Listen("order.created", func(any) { got = append(got, "wrong") })

	b.Fire("dish.created", "x")
	assert.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestFlush(t *testing.T) {
	b := New()
	called := false
	b.Listen("e", func(any) { called = true })
	b.Flush()
	b.Fire("e", nil)
	assert.False(t, called)
}

func TestNilBusDropsEvents(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() { b.Fire("e", nil) })
}
