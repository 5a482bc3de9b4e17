// Package fit describes a parsed vehicle configuration: the hull, the
// installed modules per slot group, drones and cargo. Everything here is
// names only; meaning comes from the catalog.
package fit

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Slot is a slot group of the hull.
type Slot string

const (
	SlotHigh      Slot = "high"
	SlotMid       Slot = "mid"
	SlotLow       Slot = "low"
	SlotRig       Slot = "rig"
	SlotSubsystem Slot = "subsystem"
)

// Slots lists slot groups in processing order.
var Slots = [...]Slot{SlotHigh, SlotMid, SlotLow, SlotRig, SlotSubsystem}

// Module is one installed component with an optional loaded charge.
type Module struct {
	Name   string `yaml:"module" json:"module"`
	Charge string `yaml:"charge,omitempty" json:"charge,omitempty"`
}

// Drone is a drone type and how many of it are launched.
type Drone struct {
	Name     string `yaml:"name" json:"name"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// CargoItem is a carried item (typically spare charges).
type CargoItem struct {
	Name     string `yaml:"name" json:"name"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// Fit is the structured configuration handed over by the parser.
type Fit struct {
	Name       string      `yaml:"name" json:"name"`
	Hull       string      `yaml:"hull" json:"hull"`
	High       []Module    `yaml:"high" json:"high"`
	Mid        []Module    `yaml:"mid" json:"mid"`
	Low        []Module    `yaml:"low" json:"low"`
	Rigs       []Module    `yaml:"rigs" json:"rigs"`
	Subsystems []Module    `yaml:"subsystems" json:"subsystems"`
	Drones     []Drone     `yaml:"drones" json:"drones"`
	Cargo      []CargoItem `yaml:"cargo" json:"cargo"`
}

// Modules returns the modules of one slot group.
func (f *Fit) Modules(s Slot) []Module {
	switch s {
	case SlotHigh:
		return f.High
	case SlotMid:
		return f.Mid
	case SlotLow:
		return f.Low
	case SlotRig:
		return f.Rigs
	case SlotSubsystem:
		return f.Subsystems
	default:
		return nil
	}
}

// ModuleCount returns the number of installed modules across all slot groups.
func (f *Fit) ModuleCount() int {
	n := 0
	for _, s := range Slots {
		n += len(f.Modules(s))
	}
	return n
}

// Names returns every distinct non-empty name referenced by the fit, in
// first-seen order: hull, modules and charges per slot group, drones, cargo.
func (f *Fit) Names() []string {
	seen := make(map[string]struct{}, 16)
	names := make([]string, 0, 16)
	add := func(n string) {
		if n == "" {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}

	add(f.Hull)
	for _, s := range Slots {
		for _, m := range f.Modules(s) {
			add(m.Name)
			add(m.Charge)
		}
	}
	for _, d := range f.Drones {
		add(d.Name)
	}
	for _, c := range f.Cargo {
		add(c.Name)
	}
	return names
}

// Read decodes a YAML fit description.
func Read(r io.Reader) (*Fit, error) {
	var f Fit
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding fit: %w", err)
	}
	return &f, nil
}

// Load reads a YAML fit description from path.
func Load(path string) (*Fit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fit %s: %w", path, err)
	}
	defer file.Close()
	return Read(file)
}
