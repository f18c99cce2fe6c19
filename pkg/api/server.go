package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nguyenvanduocit/envitrans/pkg/translator"
)

// TranslateRequest is the body of POST /translate. MaxLength is a pointer so
// an absent field can take the default while an explicit 0 is rejected.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	MaxLength  *int   `json:"max_length"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	RawOutput      string `json:"raw_output"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Device    string `json:"device"`
	ModelName string `json:"model_name"`
}

type Server struct {
	translator       translator.Translator
	info             translator.RunnerInfo
	defaultMaxLength int
	logger           *slog.Logger
}

// NewServer wires the translation pipeline into HTTP handlers. The runner
// info is captured once at startup; it never changes for the process
// lifetime. defaultMaxLength is applied when a request omits max_length;
// zero selects translator.DefaultMaxLength.
func NewServer(t translator.Translator, info translator.RunnerInfo, defaultMaxLength int, logger *slog.Logger) *Server {
	if defaultMaxLength <= 0 {
		defaultMaxLength = translator.DefaultMaxLength
	}

	return &Server{
		translator:       t,
		info:             info,
		defaultMaxLength: defaultMaxLength,
		logger:           logger,
	}
}

func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", s.handleHealth)
	app.Post("/translate", s.handleTranslate)

	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "ok",
		Device:    s.info.Device,
		ModelName: s.info.ModelName,
	})
}

func (s *Server) handleTranslate(c *fiber.Ctx) error {
	var body TranslateRequest
	if err := c.BodyParser(&body); err != nil {
		// name the offending field when the JSON decoder can
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": typeErr.Field + ": must be of type " + typeErr.Type.String(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	maxLength := s.defaultMaxLength
	if body.MaxLength != nil {
		maxLength = *body.MaxLength
	}

	req, err := translator.NewRequest(body.Text, body.SourceLang, maxLength)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := s.translator.Translate(c.UserContext(), req)
	if err != nil {
		s.logger.Error("translation failed",
			slog.String("source_lang", string(req.Direction)),
			slog.Any("err", err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(TranslateResponse{
		TranslatedText: result.TranslatedText,
		RawOutput:      result.RawOutput,
	})
}
