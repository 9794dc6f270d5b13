package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() *Scene
}

var builtinScenes = map[string]SceneInfo{
	"random-spheres": {
		Name:        "random-spheres",
		Description: "Field of random diffuse, metal, glass and emissive spheres",
		build:       func() *Scene { return NewRandomSpheresScene(1) },
	},
	"materials": {
		Name:        "materials",
		Description: "Diffuse, hollow glass and fuzzy metal spheres on a ground sphere",
		build:       NewMaterialsScene,
	},
	"sphere-grid": {
		Name:        "sphere-grid",
		Description: "Grid of colored metal spheres lit by a sun sphere",
		build:       func() *Scene { return NewSphereGridScene(20) },
	},
	"single-sphere": {
		Name:        "single-sphere",
		Description: "One white diffuse sphere under the sky gradient",
		build:       NewSingleSphereScene,
	},
}

// Create builds the named built-in scene
func Create(name string) (*Scene, error) {
	info, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return info.build(), nil
}

// Names lists built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every built-in scene sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		infos = append(infos, builtinScenes[name])
	}
	return infos
}
