package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/shashiranjanraj/grubdash/pkg/router"
)

// RouteList writes every bound route as a table, without starting
// anything.
func (a *Application) RouteList(w io.Writer) error {
	routes := a.BoundRoutes()
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "No routes registered.")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME"); err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, ri := range routes {
		fmt.Fprintf(w, "%-8s  %-40s  %s\n", ri.Method, ri.Path, ri.Name)
	}
	return nil
}

// BoundRoutes returns the bound routes sorted by path, then verb.
func (a *Application) BoundRoutes() []router.Route {
	return buildHandler(a).Routes()
}
