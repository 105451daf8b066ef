package pipeline

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/grubdash/pkg/ctx"
	"github.com/shashiranjanraj/grubdash/pkg/httperr"
)

type trail struct {
	seen []string
}

func newTrail(*ctx.Context) (*trail, error) { return &trail{}, nil }

func mark(name string, err error) Step[trail] {
	return func(_ *ctx.Context, s *trail) error {
		s.seen = append(s.seen, name)
		return err
	}
}

func serve(h ctx.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ctx.Wrap(h)(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	return rec
}

func TestAllStepsRunInOrder(t *testing.T) {
	var got []string
	h := New(newTrail, mark("a", nil), mark("b", nil), mark("c", nil)).
		Then(func(c *ctx.Context, s *trail) {
			got = s.seen
			c.Created(len(s.seen))
		})

	rec := serve(h)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFirstFailureHalts(t *testing.T) {
	var s *trail
	chain := New(newTrail,
		mark("a", nil),
		mark("b", httperr.Validation("A 'name' property is required.")),
		mark("c", httperr.Validation("never reached")),
	)

	handled := false
	rec := serve(chain.Then(func(c *ctx.Context, _ *trail) { handled = true }))

	assert.False(t, handled)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"A 'name' property is required."}`, rec.Body.String())

	ctx.Wrap(func(c *ctx.Context) {
		var err error
		s, err = chain.Run(c)
		assert.Error(t, err)
	})(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b"}, s.seen)
}

func TestInitFailureSkipsSteps(t *testing.T) {
	ran := false
	chain := New(
		func(*ctx.Context) (*trail, error) { return nil, errors.New("decode") },
		func(*ctx.Context, *trail) error { ran = true; return nil },
	)

	rec := serve(chain.Then(func(c *ctx.Context, _ *trail) { c.OK(nil) }))
	assert.False(t, ran)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNoSteps(t *testing.T) {
	chain := New(newTrail)

	rec := serve(chain.Then(func(c *ctx.Context, _ *trail) { c.OK([]string{}) }))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
