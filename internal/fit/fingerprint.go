package fit

import (
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable hash of the fit contents.
//
// Module order inside a slot group is significant (it decides instance
// names); drone and cargo order is not. The fit name is ignored.
func (f *Fit) Fingerprint() string {
	h, _ := blake2b.New256(nil) // nil key never fails

	writeString := func(s string) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	writeInt := func(v int) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(v))
		h.Write(n[:])
	}
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	writeString(norm(f.Hull))
	for _, s := range Slots {
		mods := f.Modules(s)
		writeString(string(s))
		writeInt(len(mods))
		for _, m := range mods {
			writeString(norm(m.Name))
			writeString(norm(m.Charge))
		}
	}

	drones := make([]Drone, len(f.Drones))
	copy(drones, f.Drones)
	sort.Slice(drones, func(i, j int) bool {
		a, b := norm(drones[i].Name), norm(drones[j].Name)
		if a != b {
			return a < b
		}
		return drones[i].Quantity < drones[j].Quantity
	})
	writeInt(len(drones))
	for _, d := range drones {
		writeString(norm(d.Name))
		writeInt(d.Quantity)
	}

	cargo := make([]CargoItem, len(f.Cargo))
	copy(cargo, f.Cargo)
	sort.Slice(cargo, func(i, j int) bool {
		a, b := norm(cargo[i].Name), norm(cargo[j].Name)
		if a != b {
			return a < b
		}
		return cargo[i].Quantity < cargo[j].Quantity
	})
	writeInt(len(cargo))
	for _, c := range cargo {
		writeString(norm(c.Name))
		writeInt(c.Quantity)
	}

	return hex.EncodeToString(h.Sum(nil))
}
