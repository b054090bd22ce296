package astro

import (
	"log/slog"
	"time"

	"github.com/SagarBajaj14/CelestAI.io/internal/ports/events"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/repository"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/service"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/storage"
	"github.com/google/uuid"
)

// Service holds the request pipelines: read user, call upstream, append audit row, return
type Service struct {
	UserRepo          repository.IUserRepo
	ChartRepo         repository.IChartRepo
	CompatibilityRepo repository.ICompatibilityRepo
	QueryRepo         repository.IQueryRepo
	AstroAPIService   service.IAstroAPIService
	LLMService        service.ILLMService
	Publisher         events.IPublisher // optional
	ChartArchive      storage.IS3Client // optional
	Log               *slog.Logger

	now   func() time.Time
	newID func() string
}

func New(
	userRepo repository.IUserRepo,
	chartRepo repository.IChartRepo,
	compatibilityRepo repository.ICompatibilityRepo,
	queryRepo repository.IQueryRepo,
	astroAPIService service.IAstroAPIService,
	llmService service.ILLMService,
	publisher events.IPublisher,
	chartArchive storage.IS3Client,
	log *slog.Logger,
) *Service {
	return &Service{
		UserRepo:          userRepo,
		ChartRepo:         chartRepo,
		CompatibilityRepo: compatibilityRepo,
		QueryRepo:         queryRepo,
		AstroAPIService:   astroAPIService,
		LLMService:        llmService,
		Publisher:         publisher,
		ChartArchive:      chartArchive,
		Log:               log,
		now:               func() time.Time { return time.Now().UTC() },
		newID:             func() string { return uuid.NewString() },
	}
}
