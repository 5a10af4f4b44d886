package handler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"mood-cinema/internal/domain"
	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/middleware"
	"mood-cinema/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("pages").Funcs(template.FuncMap{
		"rating": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	}).ParseFS(templateFS, "templates/*.html"),
)

const msgIncompleteQuiz = "모든 질문에 답해주세요."

// optionView is one radio button of the quiz form.
type optionView struct {
	Label   string
	Checked bool
}

type questionView struct {
	Number  int
	Field   string
	Prompt  string
	Options []optionView
}

type indexPage struct {
	Questions     []questionView
	KeyField      string
	HasDefaultKey bool
	Error         string
}

type scoreView struct {
	Name  string
	Count int
}

type resultPage struct {
	Genre   dto.GenreResponse
	Reason  string
	Scores  []scoreView
	Movies  []dto.MovieResponse
	Message string
	Error   string
}

type chatPage struct {
	Moods         []dto.MoodResponse
	KeyHeader     string
	HasDefaultKey bool
	DefaultMood   string
}

// PageHandler serves the server-rendered quiz and chat pages
type PageHandler struct {
	recommendations service.RecommendationService
	chat            service.ChatService
	tmdbDefaultKey  bool
	llmDefaultKey   bool
}

// NewPageHandler creates a new PageHandler instance.
// The default-key flags only change the hints shown next to the key fields.
func NewPageHandler(recommendations service.RecommendationService, chat service.ChatService, tmdbDefaultKey, llmDefaultKey bool) *PageHandler {
	return &PageHandler{
		recommendations: recommendations,
		chat:            chat,
		tmdbDefaultKey:  tmdbDefaultKey,
		llmDefaultKey:   llmDefaultKey,
	}
}

// Index renders the quiz form.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "index.html", h.indexPage(nil, ""))
}

// Result scores the submitted form and renders the recommendation.
// The key is checked before anything is scored.
func (h *PageHandler) Result(c *fiber.Ctx) error {
	questions := h.recommendations.Questions().Questions
	answers := make([]string, len(questions))
	for i := range questions {
		answers[i] = strings.Clone(c.FormValue(answerField(i)))
	}

	apiKey := middleware.APIKeyFrom(c, middleware.TMDBKeyLocal)
	if strings.TrimSpace(apiKey) == "" {
		return h.render(c, fiber.StatusBadRequest, "index.html", h.indexPage(answers, domain.MsgMissingTMDBKey))
	}

	rec, err := h.recommendations.Score(answers)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return h.render(c, fiber.StatusBadRequest, "index.html", h.indexPage(answers, msgIncompleteQuiz))
		}
		return err
	}

	page := resultPage{
		Genre:  toGenreView(rec.Genre),
		Reason: rec.Reason,
		Scores: scoresInOrder(rec.Tally),
	}

	movies, err := h.recommendations.TopMovies(c.UserContext(), apiKey, rec.Genre)
	if err != nil {
		logger.Get().Warn("Rendering recommendation without movies", zap.Error(err))
		page.Error = userMessage(err)
		return h.render(c, middleware.StatusOf(err), "result.html", page)
	}

	page.Movies = movies
	if len(movies) == 0 {
		page.Message = domain.MsgNoMovies
	}
	return h.render(c, fiber.StatusOK, "result.html", page)
}

// ChatPage renders the mood chat page.
func (h *PageHandler) ChatPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "chat.html", chatPage{
		Moods:         h.chat.Moods().Moods,
		KeyHeader:     middleware.LLMKeyHeader,
		HasDefaultKey: h.llmDefaultKey,
		DefaultMood:   string(domain.DefaultMood),
	})
}

func (h *PageHandler) indexPage(answers []string, errMsg string) indexPage {
	questions := h.recommendations.Questions().Questions
	views := make([]questionView, 0, len(questions))
	for i, q := range questions {
		selected := ""
		if i < len(answers) {
			selected = answers[i]
		}
		options := make([]optionView, 0, len(q.Options))
		for _, label := range q.Options {
			options = append(options, optionView{Label: label, Checked: label == selected})
		}
		views = append(views, questionView{
			Number:  q.Number,
			Field:   answerField(i),
			Prompt:  q.Prompt,
			Options: options,
		})
	}
	return indexPage{
		Questions:     views,
		KeyField:      middleware.TMDBKeyField,
		HasDefaultKey: h.tmdbDefaultKey,
		Error:         errMsg,
	}
}

func (h *PageHandler) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Get().Error("Failed to execute page template", zap.String("template", name), zap.Error(err))
		return domain.NewInternalError("failed to render page", err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func answerField(i int) string {
	return fmt.Sprintf("q%d", i+1)
}

func toGenreView(g domain.GenreInfo) dto.GenreResponse {
	return dto.GenreResponse{
		Code:      string(g.Genre),
		Name:      g.DisplayName,
		CatalogID: g.CatalogID,
	}
}

func scoresInOrder(t domain.Tally) []scoreView {
	genres := domain.Genres()
	out := make([]scoreView, 0, len(genres))
	for _, g := range genres {
		out = append(out, scoreView{Name: g.DisplayName, Count: t[g.Genre]})
	}
	return out
}

func asDomainError(err error) *domain.DomainError {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

func userMessage(err error) string {
	if de := asDomainError(err); de != nil {
		return de.Message
	}
	return domain.MsgCatalogUnavailable
}
