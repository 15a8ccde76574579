package scene

import "github.com/Faultbox/faultland/pkg/math"

// MaxMaterials is the size of the material uniform arrays in terrain.frag.
const MaxMaterials = 4

// Material is one slope band of the terrain shader.
// A fragment takes the first band whose Threshold its view-space normal's
// Y component exceeds. The last band in a table is the fallback.
type Material struct {
	Name              string
	Threshold         float32
	BaseColor         math.Vec3
	SpecularExponent  float32
	SpecularIntensity float32
}

// DefaultMaterials returns the two-band grass/rock table.
func DefaultMaterials() []Material {
	return []Material{
		{
			Name:              "shallow",
			Threshold:         0.7,
			BaseColor:         math.Vec3{X: 0.2, Y: 0.6, Z: 0.1},
			SpecularExponent:  128,
			SpecularIntensity: 1.0,
		},
		{
			Name:              "steep",
			Threshold:         -1,
			BaseColor:         math.Vec3{X: 0.6, Y: 0.3, Z: 0.3},
			SpecularExponent:  32,
			SpecularIntensity: 0.4,
		},
	}
}

// SelectMaterial returns the index of the band the shader picks for normalY.
func SelectMaterial(materials []Material, normalY float32) int {
	for i := 0; i < len(materials)-1; i++ {
		if normalY > materials[i].Threshold {
			return i
		}
	}
	return max(len(materials)-1, 0)
}

// materialUniforms flattens a table into the shader's parallel arrays.
type materialUniforms struct {
	count      int32
	thresholds []float32
	colors     []math.Vec3
	exponents  []float32
	intensity  []float32
}

func flattenMaterials(materials []Material) materialUniforms {
	if len(materials) > MaxMaterials {
		materials = materials[:MaxMaterials]
	}
	u := materialUniforms{count: int32(len(materials))}
	for _, m := range materials {
		u.thresholds = append(u.thresholds, m.Threshold)
		u.colors = append(u.colors, m.BaseColor)
		u.exponents = append(u.exponents, m.SpecularExponent)
		u.intensity = append(u.intensity, m.SpecularIntensity)
	}
	return u
}
