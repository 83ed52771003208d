package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Face         string                 `json:"face,omitempty"`
	Origin       [3]float64             `json:"origin"`
	Direction    [3]float64             `json:"direction"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(primitive geometry.Primitive, ray core.Ray) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Box:
		properties["min"] = toArray(geom.Min)
		properties["max"] = toArray(geom.Max)
		return "box", properties

	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["discriminant"] = geom.Discriminant(ray)
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray for pixel row i, column j
func inspectPixel(sceneObj *scene.Scene, i, j int) (InspectResponse, error) {
	camera, err := renderer.NewCamera(sceneObj.GetCameraConfig())
	if err != nil {
		return InspectResponse{}, err
	}

	ray := camera.GetRay(i, j)
	hit := sceneObj.Primitive.Intersect(ray)
	geometryType, properties := extractGeometryInfo(sceneObj.Primitive, ray)

	response := InspectResponse{
		Hit:          hit.Hit,
		GeometryType: geometryType,
		Origin:       toArray(ray.Origin),
		Direction:    toArray(ray.Direction),
		Properties:   properties,
	}
	if hit.Hit {
		response.Point = toArray(hit.Point)
		response.Normal = toArray(hit.Normal)
		response.Distance = hit.T
		if hit.Face != geometry.FaceNone {
			response.Face = hit.Face.String()
		}
	}
	return response, nil
}

// handleInspect handles single-ray inspection requests. x is the column
// and y the row of the pixel.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := req.buildScene()
	if err != nil {
		writeSceneError(w, err)
		return
	}
	width, height := sceneObj.Camera.Width, sceneObj.Camera.Height

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
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	response, err := inspectPixel(sceneObj, pixelY, pixelX)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
