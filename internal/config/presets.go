package config

import "sort"

// Preset is a named seed list.
type Preset struct {
	Description string
	List        []int
}

var Presets = map[string]*Preset{
	"mixed": {
		Description: "zeros scattered between values",
		List:        []int{5, 0, 3, 0, 0, 2, 0, 1},
	},
	"no-zeros": {
		Description: "nothing to move",
		List:        []int{1, 2, 3, 4, 5, 6, 7, 8},
	},
	"all-zeros": {
		Description: "every cell is marked",
		List:        []int{0, 0, 0, 0, 0, 0, 0, 0},
	},
	"single-zero": {
		Description: "one zero travels the whole way",
		List:        []int{4, 8, 15, 16, 23, 42, 7, 0},
	},
	"already-sorted": {
		Description: "zeros already in front",
		List:        []int{0, 0, 0, 9, 8, 7, 6, 5},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
