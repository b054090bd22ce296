package astroController

import (
	"log/slog"
	"net/http"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	astroUsecase "github.com/SagarBajaj14/CelestAI.io/internal/usecases/astro"
	"github.com/gin-gonic/gin"
)

const chartIDHeader = "X-Chart-Id"

type Controller struct {
	AstroService *astroUsecase.Service
	Log          *slog.Logger
}

func New(
	astroService *astroUsecase.Service,
	log *slog.Logger,
) *Controller {
	return &Controller{
		AstroService: astroService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/register_user", c.registerUser)
	router.GET("/get_user/:user_id", c.getUser)
	router.POST("/generate_chart/:user_id", c.generateChart)
	router.POST("/match_compatibility", c.matchCompatibility)
	router.POST("/daily_horoscope/:user_id", c.dailyHoroscope)
	router.POST("/personalized_insights/:user_id", c.personalizedInsights)
	router.POST("/ask_astrologer/:user_id", c.askAstrologer)
}

func (c *Controller) registerUser(ctx *gin.Context) {
	var req RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, "register_user", err)
		return
	}

	userID, err := c.AstroService.RegisterUser(ctx.Request.Context(), domain.BirthDetails{
		Name:     *req.Name,
		Place:    *req.Place,
		Time:     *req.Time,
		Day:      *req.Day,
		Month:    *req.Month,
		Year:     *req.Year,
		Timezone: *req.Timezone,
	})
	if err != nil {
		c.fail(ctx, "register_user", err)
		return
	}

	ctx.JSON(http.StatusOK, RegisterUserResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

func (c *Controller) getUser(ctx *gin.Context) {
	user, err := c.AstroService.GetUser(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		c.fail(ctx, "get_user", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// generateChart answers with the raw SVG; the stored row id goes in X-Chart-Id
func (c *Controller) generateChart(ctx *gin.Context) {
	chart, err := c.AstroService.GenerateChart(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		c.fail(ctx, "generate_chart", err)
		return
	}

	ctx.Header(chartIDHeader, chart.ID)
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(chart.SVG))
}

func (c *Controller) matchCompatibility(ctx *gin.Context) {
	var req MatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, "match_compatibility", err)
		return
	}

	report, err := c.AstroService.MatchCompatibility(ctx.Request.Context(), *req.User1ID, *req.User2ID)
	if err != nil {
		c.fail(ctx, "match_compatibility", err)
		return
	}

	ctx.JSON(http.StatusOK, MatchResponse{MatchReport: report})
}

func (c *Controller) dailyHoroscope(ctx *gin.Context) {
	text, err := c.AstroService.DailyHoroscope(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		c.fail(ctx, "daily_horoscope", err)
		return
	}

	ctx.JSON(http.StatusOK, HoroscopeResponse{DailyHoroscope: text})
}

func (c *Controller) personalizedInsights(ctx *gin.Context) {
	text, err := c.AstroService.PersonalizedInsights(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		c.fail(ctx, "personalized_insights", err)
		return
	}

	ctx.JSON(http.StatusOK, InsightResponse{PersonalizedInsight: text})
}

func (c *Controller) askAstrologer(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, "ask_astrologer", err)
		return
	}

	answer, err := c.AstroService.AskAstrologer(ctx.Request.Context(), ctx.Param("user_id"), *req.Question)
	if err != nil {
		c.fail(ctx, "ask_astrologer", err)
		return
	}

	ctx.JSON(http.StatusOK, AskResponse{Answer: answer})
}
