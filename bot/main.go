package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/foodstation/chatbot/config"
)

type Agent struct {
	config   *config.Config
	bot      *Bot
	pg       *Pg
	upgrader websocket.Upgrader
}

func main() {
	cfg := config.LoadConfig()

	llm, err := openai.New(
		openai.WithBaseURL(cfg.LLM.BaseURL),
		openai.WithToken(cfg.LLM.APIKey),
		openai.WithModel(cfg.LLM.Model),
	)
	if err != nil {
		log.Fatal(err)
	}

	history, err := NewSqliteHistory(cfg.History.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer history.Close()

	pg, err := NewPg(cfg.Postgres.ConnStr())
	if err != nil {
		log.Fatal(err)
	}

	bot := NewBot(NewProcessor(NewLLMService(llm)), history)

	agent := &Agent{
		config:   cfg,
		bot:      bot,
		pg:       pg,
		upgrader: websocket.Upgrader{},
	}

	if err := agent.Run(); err != nil {
		log.Fatalf("failed to run the agent: %v", err)
	}
}

func (a *Agent) Run() error {
	r := gin.Default()

	r.POST("/chat", func(ctx *gin.Context) {
		var req ChatRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := a.bot.HandleMessage(ctx.Request.Context(), req.SessionID, req.Message)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, chatResponseFrom(state))
	})

	r.GET("/chat/stream", func(ctx *gin.Context) {
		sessionID, _ := ctx.GetQuery("session_id")

		c, err := a.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "err", err)
			return
		}
		defer c.Close()

		for {
			_, text, err := c.ReadMessage()
			if err != nil {
				return
			}

			state, err := a.bot.HandleMessage(ctx.Request.Context(), sessionID, string(text))
			if err != nil {
				if err := c.WriteJSON(gin.H{"error": err.Error()}); err != nil {
					return
				}
				continue
			}
			sessionID = state.SessionID

			if err := c.WriteJSON(chatResponseFrom(state)); err != nil {
				slog.Error("failed to write to ws connection", "err", err)
				return
			}
		}
	})

	r.GET("/price", func(ctx *gin.Context) {
		dish, _ := ctx.GetQuery("dish")
		restaurant, _ := ctx.GetQuery("restaurant")
		variant, _ := ctx.GetQuery("variant")
		size, _ := ctx.GetQuery("size")

		report, err := a.pg.PriceInquiry(ctx.Request.Context(), dish, restaurant, variant, size)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, report)
	})

	r.GET("/restaurants", func(ctx *gin.Context) {
		restaurants, err := a.pg.ListRestaurants(ctx.Request.Context())
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, restaurants)
	})

	r.POST("/restaurants", func(ctx *gin.Context) {
		var restaurants CreateRestaurantsRequest

		if err := ctx.ShouldBindJSON(&restaurants); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := restaurants.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := a.pg.CreateRestaurants(ctx.Request.Context(), restaurants.ToModels()); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusCreated, gin.H{"message": "restaurants created successfully"})
	})

	return r.Run(a.config.Server.Address())
}
