package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/engine"
)

// parseTarget splits "entity:attribute". The attribute is a catalog name or
// a numeric key.
func parseTarget(target string) (string, attr.Key, error) {
	i := strings.LastIndex(target, ":")
	if i <= 0 || i == len(target)-1 {
		return "", 0, fmt.Errorf("explain target %q: want entity:attribute", target)
	}
	entity, name := strings.TrimSpace(target[:i]), strings.TrimSpace(target[i+1:])

	if key, ok := data.AttributeByName(name); ok {
		return entity, key, nil
	}
	n, err := strconv.ParseInt(name, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("explain target %q: unknown attribute %q", target, name)
	}
	return entity, attr.Key(n), nil
}

func explainAttribute(w io.Writer, file string, sim *engine.Simulation, target string) error {
	entity, key, err := parseTarget(target)
	if err != nil {
		return err
	}
	e, ok := sim.Lookup(entity)
	if !ok {
		return fmt.Errorf("explain target %q: no entity %q in %s", target, entity, file)
	}

	name := data.AttributeName(key)
	if name == "" {
		name = strconv.Itoa(int(key))
	}
	fmt.Fprintf(w, "%s: %s %s\n", file, e.Name, name)
	if base, ok := e.Base(key); ok {
		fmt.Fprintf(w, "  base      %g\n", base)
	} else {
		fmt.Fprintf(w, "  base      (none)\n")
	}
	for _, m := range e.Modifiers(key) {
		if m.Group != "" {
			fmt.Fprintf(w, "  %-9s %g [%s]\n", m.Kind, m.Value, m.Group)
			continue
		}
		fmt.Fprintf(w, "  %-9s %g\n", m.Kind, m.Value)
	}
	fmt.Fprintf(w, "  resolved  %g\n", e.Get(key))
	return nil
}
