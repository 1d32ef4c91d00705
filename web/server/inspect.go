package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/material"
	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ModelIndex   int                    `json:"modelIndex"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        core.Vec3              `json:"point"`
	Normal       core.Vec3              `json:"normal"`
	Distance     float32                `json:"distance"`
	Steps        int                    `json:"steps"`
	Color        [3]uint8               `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes a material with type assertions
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		r, g, b := core.ColorToRGB8(m.Color)
		properties["albedo"] = m.Color
		properties["color"] = fmt.Sprintf("#%02x%02x%02x", r, g, b)
		properties["diffuseWeight"] = m.DiffuseWeight
		properties["ambientWeight"] = m.AmbientWeight
		if m.Texture != nil {
			properties["texture"] = fmt.Sprintf("%dx%d", m.Texture.Width, m.Texture.Height)
		}
		return "lambertian", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes a primitive tree, recursing into combinators
func (s *Server) extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	describe := func(p geometry.Primitive) map[string]interface{} {
		childType, childProps := s.extractGeometryInfo(p)
		return map[string]interface{}{"type": childType, "properties": childProps}
	}
	describeAll := func(children []geometry.Primitive) []map[string]interface{} {
		described := make([]map[string]interface{}, 0, len(children))
		for _, child := range children {
			described = append(described, describe(child))
		}
		return described
	}

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Box:
		properties["halfExtents"] = geom.HalfExtents
		return "box", properties

	case *geometry.Plane:
		properties["point"] = geom.Point
		properties["normal"] = geom.Normal
		return "plane", properties

	case *geometry.Cylinder:
		properties["radius"] = geom.Radius
		properties["height"] = geom.HalfHeight * 2
		return "cylinder", properties

	case *geometry.Cone:
		properties["baseRadius"] = geom.BaseRadius
		properties["topRadius"] = geom.TopRadius
		properties["height"] = geom.HalfHeight * 2
		if geom.TopRadius == 0 {
			properties["type"] = "pointed"
		} else {
			properties["type"] = "frustum"
		}
		return "cone", properties

	case *geometry.Union:
		properties["children"] = describeAll(geom.Children)
		return "union", properties

	case *geometry.Intersection:
		properties["children"] = describeAll(geom.Children)
		return "intersection", properties

	case *geometry.Subtraction:
		properties["base"] = describe(geom.Base)
		properties["cut"] = describe(geom.Cut)
		return "subtraction", properties

	case *geometry.Translate:
		properties["offset"] = geom.Offset
		properties["child"] = describe(geom.Child)
		return "translate", properties

	case *geometry.Round:
		properties["radius"] = geom.Radius
		properties["child"] = describe(geom.Child)
		return "round", properties

	case *geometry.Scale:
		properties["factor"] = geom.Factor
		properties["child"] = describe(geom.Child)
		return "scale", properties

	case geometry.Func:
		return "function", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel marches the ray through (pixelX, pixelY) and reports what it found
func (s *Server) inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	raytracer := renderer.NewRaytracer(sceneObj, s.config.RendererConfig(), nil)
	ray := sceneObj.Camera.GetRay(pixelX, pixelY, sceneObj.Width, sceneObj.Height)
	result := raytracer.March(ray)

	response := InspectResponse{
		Hit:        result.Hit,
		ModelIndex: result.ModelIndex,
		Point:      result.Point,
		Distance:   result.Distance,
		Steps:      result.Steps,
	}
	r, g, b := core.ColorToRGB8(raytracer.PixelColor(pixelX, pixelY))
	response.Color = [3]uint8{r, g, b}

	if !result.Hit {
		return response
	}

	response.Normal = raytracer.EstimateNormal(result.Model, result.Point, result.Distance)

	materialType, materialProps := s.extractMaterialInfo(result.Model.Material())
	geometryType, geometryProps := s.extractGeometryInfo(result.Model.Primitive())
	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Properties = map[string]interface{}{
		"material":    materialProps,
		"geometry":    geometryProps,
		"translation": result.Model.Translation(),
	}
	return response
}

// handleInspect handles pixel inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, s.inspectPixel(sceneObj, pixelX, pixelY))
}
