package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"cube-scan/internal/face"
	"cube-scan/internal/hybrid"
	"cube-scan/pkg/logger"
)

// statusClientClosedRequest mirrors nginx's non-standard code for a
// client that went away mid-request.
const statusClientClosedRequest = 499

// errBadFallbackPayload marks a fallback response that does not satisfy
// the nine-tile schema, so the handler can answer 422 instead of 500.
var errBadFallbackPayload = errors.New("invalid fallback payload")

// cubeFace mirrors the wire schema: exactly nine fixed position keys,
// each a one-letter color code. Validation here is the schema gate the
// analysis core relies on the API layer for.
type cubeFace struct {
	TL string `json:"TL" validate:"required,oneof=R G B O Y W"`
	TC string `json:"TC" validate:"required,oneof=R G B O Y W"`
	TR string `json:"TR" validate:"required,oneof=R G B O Y W"`
	ML string `json:"ML" validate:"required,oneof=R G B O Y W"`
	C  string `json:"C" validate:"required,oneof=R G B O Y W"`
	MR string `json:"MR" validate:"required,oneof=R G B O Y W"`
	BL string `json:"BL" validate:"required,oneof=R G B O Y W"`
	BC string `json:"BC" validate:"required,oneof=R G B O Y W"`
	BR string `json:"BR" validate:"required,oneof=R G B O Y W"`
}

func wireFromFace(f face.Face) cubeFace {
	return cubeFace{
		TL: f.At(face.TopLeft).Code(), TC: f.At(face.TopCenter).Code(), TR: f.At(face.TopRight).Code(),
		ML: f.At(face.MiddleLeft).Code(), C: f.At(face.Center).Code(), MR: f.At(face.MiddleRight).Code(),
		BL: f.At(face.BottomLeft).Code(), BC: f.At(face.BottomCenter).Code(), BR: f.At(face.BottomRight).Code(),
	}
}

func faceFromWire(tiles map[string]string) (face.Face, error) {
	var f face.Face
	for _, p := range face.Positions() {
		code, ok := tiles[p.Code()]
		if !ok {
			return f, fmt.Errorf("missing tile %s", p.Code())
		}
		c, err := face.ParseColor(code)
		if err != nil {
			return f, fmt.Errorf("tile %s: %w", p.Code(), err)
		}
		f[p] = c
	}
	return f, nil
}

// disconnectProbe reports cancellation once the client connection backing
// this request is gone. It peeks at the socket without consuming data,
// so it is cheap enough to call at every checkpoint.
func disconnectProbe(c *fiber.Ctx) hybrid.Probe {
	return probeConn(c.Context().Conn())
}

func probeConn(conn net.Conn) hybrid.Probe {
	return func() error {
		if !connAlive(conn) {
			return hybrid.ErrCancelled
		}
		return nil
	}
}

// disconnectPollInterval is how often watchDisconnect re-checks the
// client connection while the orchestrator runs.
const disconnectPollInterval = 250 * time.Millisecond

// watchDisconnect returns a context cancelled once conn's peer goes
// away, so a fallback network call already in flight is torn down too.
// stop must be called when the request finishes.
func watchDisconnect(parent context.Context, conn net.Conn) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		ticker := time.NewTicker(disconnectPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !connAlive(conn) {
					cancel()
					return
				}
			}
		}
	}()
	return ctx, cancel
}

// visionFallback adapts the vision inference client to the orchestrator's
// fallback contract, converting and checking the model's output.
func (s *Server) visionFallback() hybrid.Fallback {
	if s.vision == nil {
		return nil
	}
	return func(ctx context.Context, image []byte, probe hybrid.Probe) (face.Face, error) {
		tiles, err := s.vision.Vision(ctx, image, probe)
		if err != nil {
			return face.Face{}, err
		}
		f, err := faceFromWire(tiles)
		if err != nil {
			return face.Face{}, fmt.Errorf("%w: %v", errBadFallbackPayload, err)
		}
		return f, nil
	}
}

func (s *Server) analyzeCube(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No image provided")
	}
	if fh.Filename == "" || fh.Size == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Empty filename")
	}

	file, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable image upload")
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable image upload")
	}

	probe := disconnectProbe(c)
	if err := probe(); err != nil {
		return c.SendStatus(statusClientClosedRequest)
	}

	ctx, stop := watchDisconnect(c.Context(), c.Context().Conn())
	defer stop()
	result, err := hybrid.Analyze(ctx, data, probe, hybrid.Options{
		Threshold: s.cfg.ConfidenceThreshold,
		Fallback:  s.visionFallback(),
	})
	if err != nil {
		switch {
		case errors.Is(err, hybrid.ErrCancelled):
			logger.FromContext(c.UserContext()).Info("client disconnected during analysis")
			return c.SendStatus(statusClientClosedRequest)
		case errors.Is(err, face.ErrDecode), errors.Is(err, face.ErrTooSmall):
			return fiber.NewError(fiber.StatusBadRequest, "Could not decode image")
		case errors.Is(err, errBadFallbackPayload):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid inference response")
		default:
			logger.FromContext(c.UserContext()).Error("analysis failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to analyze cube with both CV and LLM")
		}
	}

	payload := wireFromFace(result)
	if err := s.validate.Struct(payload); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid inference response")
	}

	return c.JSON(fiber.Map{"success": true, "cube_face": payload})
}

type tauntRequest struct {
	NPCCharacter    string `json:"npc_character" validate:"required,min=1,max=50"`
	PlayerCharacter string `json:"player_character" validate:"required,min=1,max=50"`
	Context         string `json:"context" validate:"omitempty,max=200"`
}

type tauntResponse struct {
	Taunt string `json:"taunt" validate:"required,min=10,max=200"`
}

func (s *Server) generateTaunt(c *fiber.Ctx) error {
	var req tauntRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}
	req.NPCCharacter = strings.TrimSpace(req.NPCCharacter)
	req.PlayerCharacter = strings.TrimSpace(req.PlayerCharacter)
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	prompt := fmt.Sprintf(
		"You are the character '%s'. "+
			"Generate some short, witty trash talk directed at your opponent, '%s'. "+
			"Your response must be a single JSON object with one key: 'taunt'. "+
			`Example: {"taunt": "You cross my mind only on Thursday morning, that's when I take out the garbage."}`,
		req.NPCCharacter, req.PlayerCharacter,
	)

	raw, err := s.text.Text(c.UserContext(), prompt)
	if err != nil {
		logger.FromContext(c.UserContext()).Error("taunt inference failed", "err", err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "Failed to get a valid response from the inference service.")
	}

	var resp tauntResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Failed to get a valid response from the inference service.")
	}
	resp.Taunt = strings.Trim(strings.TrimSpace(resp.Taunt), `"'`)
	if err := s.validate.Struct(resp); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Failed to get a valid response from the inference service.")
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"taunt":            resp.Taunt,
		"npc_character":    req.NPCCharacter,
		"player_character": req.PlayerCharacter,
	})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service_type":         s.cfg.ServiceType,
		"cors_origins":         s.cfg.CORSOrigins,
		"cube_analysis_model":  s.cfg.CubeModel,
		"witty_text_model":     s.cfg.TextModel,
		"confidence_threshold": s.cfg.ConfidenceThreshold,
	})
}
