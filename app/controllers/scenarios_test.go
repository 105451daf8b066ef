package controllers_test

import (
	"testing"

	"github.com/shashiranjanraj/grubdash/pkg/testkit"
)

func TestScenarios(t *testing.T) {
	testkit.RunDir(t, func() testkit.Runner {
		a := newAPI(t, "")
		return testkit.Runner{Handler: a.handler, Events: a.events}
	}, "testdata")
}
