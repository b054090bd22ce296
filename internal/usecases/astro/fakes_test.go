package astro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

type fakeUsers struct {
	users     map[string]*domain.User
	createErr error
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "User"}
	}
	cp := *u
	return &cp, nil
}

type fakeCharts struct {
	rows []domain.AstroChart
	err  error
}

func (f *fakeCharts) Create(_ context.Context, c *domain.AstroChart) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *c)
	return nil
}

type fakeChecks struct {
	rows []domain.CompatibilityCheck
}

func (f *fakeChecks) Create(_ context.Context, c *domain.CompatibilityCheck) error {
	f.rows = append(f.rows, *c)
	return nil
}

type fakeQueries struct {
	rows []domain.UserQuery
	err  error
}

func (f *fakeQueries) Create(_ context.Context, q *domain.UserQuery) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *q)
	return nil
}

type fakeAstro struct {
	svg       string
	report    string
	summary   domain.ChartSummary
	err       error
	lastUsers []*domain.User
}

func (f *fakeAstro) ChartSVG(_ context.Context, u *domain.User) (string, error) {
	f.lastUsers = []*domain.User{u}
	return f.svg, f.err
}

func (f *fakeAstro) MatchReport(_ context.Context, u1, u2 *domain.User) (string, error) {
	f.lastUsers = []*domain.User{u1, u2}
	return f.report, f.err
}

func (f *fakeAstro) ChartSummary(_ context.Context, u *domain.User) (domain.ChartSummary, error) {
	f.lastUsers = []*domain.User{u}
	return f.summary, f.err
}

type fakeLLM struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type fakePublisher struct {
	events []domain.InteractionEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, e domain.InteractionEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeArchive struct {
	keys []string
	err  error
}

func (f *fakeArchive) PutFile(_ context.Context, path string, _ []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, path)
	return nil
}

var errBoom = errors.New("boom")

type fixture struct {
	svc       *Service
	users     *fakeUsers
	charts    *fakeCharts
	checks    *fakeChecks
	queries   *fakeQueries
	astro     *fakeAstro
	llm       *fakeLLM
	publisher *fakePublisher
	archive   *fakeArchive
}

func newFixture() *fixture {
	f := &fixture{
		users: &fakeUsers{users: map[string]*domain.User{
			"u-1": {ID: "u-1", Name: "Asha", Place: "Delhi", Time: "10:30", Day: "01", Month: "02", Year: "1990", Timezone: "+05:30"},
			"u-2": {ID: "u-2", Name: "Ravi", Place: "Pune", Time: "06:15", Day: "12", Month: "11", Year: "1988", Timezone: "+05:30"},
		}},
		charts:    &fakeCharts{},
		checks:    &fakeChecks{},
		queries:   &fakeQueries{},
		astro:     &fakeAstro{},
		llm:       &fakeLLM{},
		publisher: &fakePublisher{},
		archive:   &fakeArchive{},
	}

	f.svc = New(f.users, f.charts, f.checks, f.queries, f.astro, f.llm, f.publisher, f.archive,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	seq := 0
	f.svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	f.svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return f
}
