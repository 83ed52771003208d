package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Response body encodings
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// RenderRequest represents the query parameters shared by render and inspect
type RenderRequest struct {
	Scene    string            // Preset scene name
	Width    int               // Image width (0 = scene default)
	Height   int               // Image height (0 = scene default)
	Format   string            // "ppm" or "png"
	RayModel renderer.RayModel // Ray direction derivation
}

// handleRender renders a preset scene and returns it as the response body
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := req.buildScene()
	if err != nil {
		writeSceneError(w, err)
		return
	}

	renderID := nextRenderID()
	raytracer := renderer.NewRaytracer(sceneObj, renderer.DefaultRenderConfig(), NewWebLogger(renderID))

	// Client disconnection cancels the render
	pixels, stats, err := raytracer.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var body bytes.Buffer
	contentType := "image/x-portable-pixmap"
	if req.Format == FormatPNG {
		contentType = "image/png"
		err = output.EncodePNG(&body, pixels)
	} else {
		err = output.WritePPM(&body, pixels)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Encoding error: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "box" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.RayModel, err = renderer.ParseRayModel(query.Get("rayModel")); err != nil {
		return nil, err
	}

	switch format := strings.ToLower(query.Get("format")); format {
	case "", FormatPPM:
		req.Format = FormatPPM
	case FormatPNG:
		req.Format = FormatPNG
	default:
		return nil, fmt.Errorf("format must be %s or %s, got: %s", FormatPPM, FormatPNG, format)
	}

	return req, nil
}

// buildScene resolves the preset and applies the request overrides
func (req *RenderRequest) buildScene() (*scene.Scene, error) {
	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		return nil, err
	}

	width, height := sceneObj.Camera.Width, sceneObj.Camera.Height
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}

	sceneObj = sceneObj.WithResolution(width, height).WithRayModel(req.RayModel)
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

func writeSceneError(w http.ResponseWriter, err error) {
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
