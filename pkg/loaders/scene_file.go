package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// SceneFile is the YAML description of a scene
type SceneFile struct {
	Width     int                     `yaml:"width"`
	Height    int                     `yaml:"height"`
	Camera    CameraSpec              `yaml:"camera"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Models    []ModelSpec             `yaml:"models"`
	Lights    []LightSpec             `yaml:"lights"`
}

// CameraSpec places the camera. At most one of the three forms may be set;
// an empty spec puts the camera at (0,0,-1).
type CameraSpec struct {
	Position  []float32      `yaml:"position"`
	Transform *TransformSpec `yaml:"transform"`
	LookAt    *LookAtSpec    `yaml:"lookAt"`
}

// LookAtSpec builds a left-handed look-at camera. Up defaults to +Y.
type LookAtSpec struct {
	Eye    []float32 `yaml:"eye"`
	Target []float32 `yaml:"target"`
	Up     []float32 `yaml:"up"`
}

// TransformSpec is scale, then rotation, then translation.
// Rotate holds Euler angles in degrees, composed as X·Y·Z.
type TransformSpec struct {
	Translate []float32 `yaml:"translate"`
	Rotate    []float32 `yaml:"rotate"`
	Scale     *float32  `yaml:"scale"` // uniform; defaults to 1
}

// MaterialSpec describes a Lambertian material
type MaterialSpec struct {
	Color   []float32 `yaml:"color"`
	Diffuse *float32  `yaml:"diffuse"`
	Ambient *float32  `yaml:"ambient"`
	Texture string    `yaml:"texture"` // relative to the scene file
}

// PrimitiveSpec is one node of a primitive tree
type PrimitiveSpec struct {
	Type      string          `yaml:"type"`
	Radius    float32         `yaml:"radius"`    // sphere, cylinder, round; base radius of a cone
	TopRadius float32         `yaml:"topRadius"` // cone
	Height    float32         `yaml:"height"`    // cylinder, cone
	Size      []float32       `yaml:"size"`      // box, full edge lengths; one value makes a cube
	Point     []float32       `yaml:"point"`     // plane
	Normal    []float32       `yaml:"normal"`    // plane, defaults to +Y
	Offset    []float32       `yaml:"offset"`    // translate
	Children  []PrimitiveSpec `yaml:"children"`  // union, intersection
	Child     *PrimitiveSpec  `yaml:"child"`     // translate, round
	Base      *PrimitiveSpec  `yaml:"base"`      // subtraction
	Cut       *PrimitiveSpec  `yaml:"cut"`       // subtraction
}

// ModelSpec places a primitive with a material. Material names a key of
// SceneFile.Materials; empty means plain white.
type ModelSpec struct {
	Primitive PrimitiveSpec `yaml:"primitive"`
	Transform TransformSpec `yaml:"transform"`
	Material  string        `yaml:"material"`
	Repeat    *RepeatSpec   `yaml:"repeat"`
}

// RepeatSpec emits Count copies of a model. Every copy applies the step
// transform in the local frame of the previous copy.
type RepeatSpec struct {
	Count     int       `yaml:"count"`
	Translate []float32 `yaml:"translate"`
	Rotate    []float32 `yaml:"rotate"`
	Scale     *float32  `yaml:"scale"`
}

func (r RepeatSpec) step() TransformSpec {
	return TransformSpec{Translate: r.Translate, Rotate: r.Rotate, Scale: r.Scale}
}

// LightSpec describes a point light. Color defaults to white and
// intensity to 1.
type LightSpec struct {
	Color     []float32 `yaml:"color"`
	Intensity *float32  `yaml:"intensity"`
	Position  []float32 `yaml:"position"`
}

// LoadSceneFile reads a YAML scene description
func LoadSceneFile(filename string) (*scene.Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseScene(data, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene builds a scene from YAML. Texture paths resolve against baseDir.
func ParseScene(data []byte, baseDir string) (*scene.Scene, error) {
	var file SceneFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return file.Build(baseDir)
}

// Build converts the description into a validated scene
func (f *SceneFile) Build(baseDir string) (*scene.Scene, error) {
	width, height := f.Width, f.Height
	if width == 0 && height == 0 {
		width, height = scene.DefaultWidth, scene.DefaultHeight
	}

	camera, err := f.Camera.build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	materials := make(map[string]material.Material, len(f.Materials))
	textures := make(map[string]*material.ImageTexture)
	for name, spec := range f.Materials {
		mat, err := spec.build(baseDir, textures)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	var models []*scene.Model
	for i, spec := range f.Models {
		built, err := spec.build(materials)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		models = append(models, built...)
	}

	sceneLights := make([]lights.PointLight, 0, len(f.Lights))
	for i, spec := range f.Lights {
		light, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sceneLights = append(sceneLights, light)
	}

	return scene.NewScene(width, height, camera, models, sceneLights)
}

func (c CameraSpec) build() (*scene.Camera, error) {
	forms := 0
	for _, set := range []bool{c.Position != nil, c.Transform != nil, c.LookAt != nil} {
		if set {
			forms++
		}
	}
	if forms > 1 {
		return nil, fmt.Errorf("only one of position, transform and lookAt may be set")
	}

	switch {
	case c.LookAt != nil:
		eye, err := parseVec3("eye", c.LookAt.Eye, core.Vec3{})
		if err != nil {
			return nil, err
		}
		target, err := parseVec3("target", c.LookAt.Target, core.NewVec3(0, 0, 1))
		if err != nil {
			return nil, err
		}
		up, err := parseVec3("up", c.LookAt.Up, core.NewVec3(0, 1, 0))
		if err != nil {
			return nil, err
		}
		if eye == target {
			return nil, fmt.Errorf("eye and target coincide")
		}
		return scene.NewLookAtCamera(eye, target, up), nil
	case c.Transform != nil:
		transform, err := c.Transform.build()
		if err != nil {
			return nil, err
		}
		return scene.NewCamera(transform), nil
	default:
		position, err := parseVec3("position", c.Position, core.NewVec3(0, 0, -1))
		if err != nil {
			return nil, err
		}
		return scene.NewCameraAt(position), nil
	}
}

func (t TransformSpec) build() (core.Transform, error) {
	scale, rotation, translation, err := t.parts()
	if err != nil {
		return core.Transform{}, err
	}
	return core.FromScaleRotationTranslation(scale, rotation, translation), nil
}

// parts returns the uniform scale, the rotation and the translation
func (t TransformSpec) parts() (float32, mgl32.Quat, core.Vec3, error) {
	translation, err := parseVec3("translate", t.Translate, core.Vec3{})
	if err != nil {
		return 0, mgl32.Quat{}, core.Vec3{}, err
	}
	angles, err := parseVec3("rotate", t.Rotate, core.Vec3{})
	if err != nil {
		return 0, mgl32.Quat{}, core.Vec3{}, err
	}
	scale := float32(1)
	if t.Scale != nil {
		scale = *t.Scale
	}

	rotation := mgl32.QuatRotate(mgl32.DegToRad(angles[0]), mgl32.Vec3{1, 0, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(angles[1]), mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(angles[2]), mgl32.Vec3{0, 0, 1}))
	return scale, rotation, translation, nil
}

// checkScale rejects scales a distance bound cannot be built from
func checkScale(scale float32) error {
	switch {
	case scale == 0:
		return fmt.Errorf("scale 0: %w", scene.ErrSingularTransform)
	case !(scale > 0) || math32.IsInf(scale, 1):
		return fmt.Errorf("scale must be positive and finite, got %v", scale)
	}
	return nil
}

func (m MaterialSpec) build(baseDir string, textures map[string]*material.ImageTexture) (material.Material, error) {
	color, err := parseVec3("color", m.Color, core.Splat(1))
	if err != nil {
		return nil, err
	}

	lambertian := material.NewLambertian(color)
	if m.Diffuse != nil {
		lambertian.DiffuseWeight = *m.Diffuse
	}
	if m.Ambient != nil {
		lambertian.AmbientWeight = *m.Ambient
	}

	if m.Texture != "" {
		path := m.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		texture, ok := textures[path]
		if !ok {
			texture, err = LoadTexture(path)
			if err != nil {
				return nil, err
			}
			textures[path] = texture
		}
		lambertian.Texture = texture
	}
	return lambertian, nil
}

func (p PrimitiveSpec) build() (geometry.Primitive, error) {
	switch p.Type {
	case "sphere":
		if p.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", p.Radius)
		}
		return geometry.NewSphere(p.Radius), nil
	case "box":
		size, err := parseVec3("size", p.Size, core.Splat(1))
		if err != nil {
			return nil, err
		}
		return geometry.NewBox(size.Mul(0.5)), nil
	case "plane":
		point, err := parseVec3("point", p.Point, core.Vec3{})
		if err != nil {
			return nil, err
		}
		normal, err := parseVec3("normal", p.Normal, core.NewVec3(0, 1, 0))
		if err != nil {
			return nil, err
		}
		if normal.Len() == 0 {
			return nil, fmt.Errorf("plane normal must not be zero")
		}
		return geometry.NewPlane(point, normal), nil
	case "cylinder":
		if p.Radius <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("cylinder radius and height must be positive, got %v and %v", p.Radius, p.Height)
		}
		return geometry.NewCylinder(p.Radius, p.Height), nil
	case "cone":
		cone, err := geometry.NewCone(p.Radius, p.TopRadius, p.Height)
		if err != nil {
			return nil, err
		}
		return cone, nil
	case "union", "intersection":
		if len(p.Children) == 0 {
			return nil, fmt.Errorf("%s needs at least one child", p.Type)
		}
		children := make([]geometry.Primitive, 0, len(p.Children))
		for i, spec := range p.Children {
			child, err := spec.build()
			if err != nil {
				return nil, fmt.Errorf("%s child %d: %w", p.Type, i, err)
			}
			children = append(children, child)
		}
		if p.Type == "union" {
			return geometry.NewUnion(children...), nil
		}
		return geometry.NewIntersection(children...), nil
	case "subtraction":
		if p.Base == nil || p.Cut == nil {
			return nil, fmt.Errorf("subtraction needs base and cut")
		}
		base, err := p.Base.build()
		if err != nil {
			return nil, fmt.Errorf("subtraction base: %w", err)
		}
		cut, err := p.Cut.build()
		if err != nil {
			return nil, fmt.Errorf("subtraction cut: %w", err)
		}
		return geometry.NewSubtraction(base, cut), nil
	case "translate", "round":
		if p.Child == nil {
			return nil, fmt.Errorf("%s needs a child", p.Type)
		}
		child, err := p.Child.build()
		if err != nil {
			return nil, fmt.Errorf("%s child: %w", p.Type, err)
		}
		if p.Type == "round" {
			return geometry.NewRound(p.Radius, child), nil
		}
		offset, err := parseVec3("offset", p.Offset, core.Vec3{})
		if err != nil {
			return nil, err
		}
		return geometry.NewTranslate(offset, child), nil
	case "":
		return nil, fmt.Errorf("primitive type missing")
	default:
		return nil, fmt.Errorf("unknown primitive type %q", p.Type)
	}
}

func (m ModelSpec) build(materials map[string]material.Material) ([]*scene.Model, error) {
	primitive, err := m.Primitive.build()
	if err != nil {
		return nil, err
	}

	mat := material.Material(material.NewLambertian(core.Splat(1)))
	if m.Material != "" {
		var ok bool
		if mat, ok = materials[m.Material]; !ok {
			return nil, fmt.Errorf("unknown material %q", m.Material)
		}
	}

	scale, rotation, translation, err := m.Transform.parts()
	if err != nil {
		return nil, err
	}
	if err := checkScale(scale); err != nil {
		return nil, err
	}

	count := 1
	stepScale, stepRotation, stepTranslation := float32(1), mgl32.QuatIdent(), core.Vec3{}
	if m.Repeat != nil {
		if m.Repeat.Count < 1 {
			return nil, fmt.Errorf("repeat count must be at least 1, got %d", m.Repeat.Count)
		}
		count = m.Repeat.Count
		if stepScale, stepRotation, stepTranslation, err = m.Repeat.step().parts(); err != nil {
			return nil, fmt.Errorf("repeat: %w", err)
		}
		if err := checkScale(stepScale); err != nil {
			return nil, fmt.Errorf("repeat: %w", err)
		}
	}

	// The model transform stays rigid and the scale moves into the
	// primitive, so world distances remain a lower bound. Copies share the
	// primitive and material; only the placement differs.
	placement := core.FromRotationTranslation(rotation, translation)
	models := make([]*scene.Model, 0, count)
	for i := 0; i < count; i++ {
		shape := primitive
		if scale != 1 {
			shape = geometry.NewScale(scale, primitive)
		}
		model, err := scene.NewModel(placement, shape, mat)
		if err != nil {
			return nil, fmt.Errorf("copy %d: %w", i, err)
		}
		models = append(models, model)

		// The step applies in this copy's frame, including its scale
		placement = placement.Mul(core.FromRotationTranslation(stepRotation, stepTranslation.Mul(scale)))
		scale *= stepScale
	}
	return models, nil
}

func (l LightSpec) build() (lights.PointLight, error) {
	color, err := parseVec3("color", l.Color, core.Splat(1))
	if err != nil {
		return lights.PointLight{}, err
	}
	position, err := parseVec3("position", l.Position, core.Vec3{})
	if err != nil {
		return lights.PointLight{}, err
	}
	intensity := float32(1)
	if l.Intensity != nil {
		intensity = *l.Intensity
	}
	return lights.NewPointLight(position, color, intensity), nil
}

// parseVec3 accepts three components, a single value splatted to all three,
// or nothing for the default
func parseVec3(field string, values []float32, def core.Vec3) (core.Vec3, error) {
	switch len(values) {
	case 0:
		return def, nil
	case 1:
		return core.Splat(values[0]), nil
	case 3:
		return core.NewVec3(values[0], values[1], values[2]), nil
	default:
		return core.Vec3{}, fmt.Errorf("%s: expected 1 or 3 values, got %d", field, len(values))
	}
}
