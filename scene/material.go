package scene

// Material is the per-mesh texture set. Diffuse is always present;
// Normal and Specular are either both set or both nil.
type Material struct {
	Diffuse  *Texture
	Normal   *Texture
	Specular *Texture
}

// NewMaterial builds a diffuse-only material.
func NewMaterial(diffuse *Texture) *Material {
	return &Material{Diffuse: diffuse}
}

// NewNormalMappedMaterial builds a material with the full texture set
// required for tangent-space shading.
func NewNormalMappedMaterial(diffuse, normal, specular *Texture) *Material {
	return &Material{Diffuse: diffuse, Normal: normal, Specular: specular}
}

// HasNormalMap reports whether the normal and specular maps are present.
func (m *Material) HasNormalMap() bool {
	return m.Normal != nil && m.Specular != nil
}

// Textures returns every non-nil texture, for upload and teardown.
func (m *Material) Textures() []*Texture {
	var out []*Texture
	for _, t := range []*Texture{m.Diffuse, m.Normal, m.Specular} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
