package assets

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rackmodel/internal/model"
	"github.com/Faultbox/rackmodel/internal/transform"
)

// Definition is one model entry in a definitions file.
type Definition struct {
	Name     string            `yaml:"name"`
	Type     string            `yaml:"type"`
	Textures map[string]string `yaml:"textures"`
	// AmbientOcclusion defaults to true for cubes.
	AmbientOcclusion *bool `yaml:"ambient_occlusion"`
	// Display maps a perspective name to a transform in the JSON transform
	// shape, written as YAML.
	Display map[string]any `yaml:"display"`
	// Items lists extra items that render with this model.
	Items []string `yaml:"items"`
}

type definitionFile struct {
	Models []Definition `yaml:"models"`
}

var perspectiveNames = map[string]model.Perspective{
	"thirdperson": model.PerspectiveThirdPerson,
	"firstperson": model.PerspectiveFirstPerson,
	"head":        model.PerspectiveHead,
	"gui":         model.PerspectiveGUI,
	"ground":      model.PerspectiveGround,
	"fixed":       model.PerspectiveFixed,
}

// LoadDefinitions reads a YAML definitions document and registers every
// model in it.
//
//	models:
//	  - name: minecraft:block/furnace
//	    type: cube
//	    textures: {particle: "#top", top: minecraft:blocks/furnace_top, ...}
//	  - name: minecraft:item/apple
//	    type: item
//	    textures: {layer0: minecraft:items/apple}
//	    display: {fixed: {scale: 0.5}}
func (r *Registry) LoadDefinitions(rd io.Reader) error {
	var file definitionFile
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return fmt.Errorf("decoding model definitions: %w", err)
	}

	for i, def := range file.Models {
		loc, m, err := def.build()
		if err != nil {
			return fmt.Errorf("model definition %d (%s): %w", i, def.Name, err)
		}
		r.Register(loc, m)
		for _, item := range def.Items {
			itemLoc, err := model.ParseLocation(item)
			if err != nil {
				return fmt.Errorf("model definition %d (%s): %w", i, def.Name, err)
			}
			r.AliasItem(itemLoc, loc)
		}
	}
	return nil
}

// LoadDefinitionFiles loads each file in order; later files override
// earlier definitions.
func (r *Registry) LoadDefinitionFiles(paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening definitions %s: %w", path, err)
		}
		err = r.LoadDefinitions(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (d Definition) build() (model.ResourceLocation, model.Model, error) {
	loc, err := model.ParseLocation(d.Name)
	if err != nil {
		return model.ResourceLocation{}, nil, err
	}

	switch d.Type {
	case "cube", "":
		ao := true
		if d.AmbientOcclusion != nil {
			ao = *d.AmbientOcclusion
		}
		return loc, NewCubeModel(d.Textures, ao), nil
	case "item":
		display := make(map[model.Perspective]transform.Transform, len(d.Display))
		for name, raw := range d.Display {
			p, ok := perspectiveNames[name]
			if !ok {
				return model.ResourceLocation{}, nil, fmt.Errorf("unknown display perspective %q", name)
			}
			data, err := json.Marshal(raw)
			if err != nil {
				return model.ResourceLocation{}, nil, err
			}
			t, err := transform.Parse(data)
			if err != nil {
				return model.ResourceLocation{}, nil, fmt.Errorf("display %s: %w", name, err)
			}
			display[p] = t
		}
		return loc, NewItemModel(d.Textures, display), nil
	}
	return model.ResourceLocation{}, nil, fmt.Errorf("unknown model type %q", d.Type)
}
