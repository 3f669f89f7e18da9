// Package web serves the read-only schedule, lineup and rating pages.
package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/AVick23/ML-Manager"
	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/service"
	"github.com/AVick23/ML-Manager/internal/web/webpath"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	eventService *service.EventService
	botStorage   botstorage.BotStorage
	app          *fiber.App
	cfg          config.Server
}

func New(es *service.EventService, bs botstorage.BotStorage, cfg config.Server) (*Server, error) {
	server := Server{
		eventService: es,
		botStorage:   bs,
		cfg:          cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("Title", titleCase)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Get(webpath.Home, server.handleSchedule)
	app.Get(webpath.Event, server.handleEvent)
	app.Get(webpath.Summary, server.handleSummary)
	app.Get(webpath.Metrics, adaptor.HTTPHandler(promhttp.Handler()))
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

type eventRow struct {
	Event        domain.Event
	Participants int
}

func (s *Server) handleSchedule(ctx *fiber.Ctx) error {
	events, err := s.eventService.Upcoming(ctx.Context())
	if err != nil {
		return err
	}
	rows := make([]eventRow, 0, len(events))
	for _, event := range events {
		participants, err := s.eventService.Participants(ctx.Context(), event.ID)
		if err != nil {
			return err
		}
		rows = append(rows, eventRow{Event: event, Participants: len(participants)})
	}
	return ctx.Render("schedule", newData("Расписание").With("Events", rows), "layouts/main")
}

type seatRow struct {
	Name string
	Team string
	Role string
}

func (s *Server) handleEvent(ctx *fiber.Ctx) error {
	eventID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}
	event, err := s.eventService.Event(ctx.Context(), eventID)
	if errors.Is(err, service.ErrEventNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	d := newData(event.Title).With("Event", event)
	match, err := s.eventService.Lineup(ctx.Context(), eventID)
	switch {
	case errors.Is(err, service.ErrNoLineup):
	case err != nil:
		return err
	default:
		seats, err := s.seats(ctx, match)
		if err != nil {
			return err
		}
		d = d.With("Seats", seats)
	}
	return ctx.Render("event", d, "layouts/main")
}

func (s *Server) handleSummary(ctx *fiber.Ctx) error {
	eventID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}
	event, err := s.eventService.Event(ctx.Context(), eventID)
	if errors.Is(err, service.ErrEventNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	summaries, err := s.eventService.RatingSummary(ctx.Context(), eventID)
	if errors.Is(err, service.ErrNoLineup) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	userIDs := make([]int64, 0, len(summaries))
	for _, summary := range summaries {
		userIDs = append(userIDs, summary.Participant.UserID)
	}
	names, err := s.names(ctx, userIDs)
	if err != nil {
		return err
	}
	type summaryRow struct {
		Name    string
		Team    string
		Played  bool
		Average float64
		Count   int
	}
	rows := make([]summaryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, summaryRow{
			Name:    names[summary.Participant.UserID],
			Team:    string(summary.Participant.Team),
			Played:  summary.Participant.Played,
			Average: summary.Average,
			Count:   summary.Count,
		})
	}
	return ctx.Render("summary",
		newData("Оценки: "+event.Title).With("Event", event).With("Rows", rows),
		"layouts/main")
}

func (s *Server) seats(ctx *fiber.Ctx, match domain.Match) ([]seatRow, error) {
	userIDs := make([]int64, 0, len(match.Participants))
	for _, p := range match.Participants {
		userIDs = append(userIDs, p.UserID)
	}
	names, err := s.names(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	seats := make([]seatRow, 0, len(match.Participants))
	for _, p := range match.Participants {
		seats = append(seats, seatRow{
			Name: names[p.UserID],
			Team: string(p.Team),
			Role: string(p.Role),
		})
	}
	return seats, nil
}

func (s *Server) names(ctx *fiber.Ctx, userIDs []int64) (map[int64]string, error) {
	users, err := s.botStorage.GetUsers(ctx.Context(), userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	return names, nil
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
