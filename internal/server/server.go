package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bookreel/docs"
	"bookreel/internal/ai/component"
	"bookreel/internal/config"
	"bookreel/internal/handler"
	reelHandler "bookreel/internal/handler/reel"
	"bookreel/internal/pkg/reeltools"
	"bookreel/internal/pkg/reeltools/providers"
	"bookreel/internal/server/middleware"
	"bookreel/internal/service"
)

// Server HTTP 服务器
type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	reelSvc *service.ReelService
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	// 初始化 LLM 提供者（分析与生成共用同一个 ChatModel）
	if cfg.AI.APIKey == "" {
		log.Warn().Msg("AI API key not configured, model calls will fail until it is set")
	}
	chatModel, err := component.NewChatModel(context.Background(), &cfg.AI)
	if err != nil {
		return nil, err
	}
	provider := providers.NewEinoProvider(chatModel)
	log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("initialized chat model")

	// 装配 Reel 创作服务
	reelSvc := service.NewReelService(
		reeltools.NewAnalyzer(provider),
		reeltools.NewGenerator(provider),
		cfg.Pipeline.RenderStepLatency,
	)

	srv := &Server{
		cfg:     cfg,
		engine:  engine,
		reelSvc: reelSvc,
	}

	// 设置路由
	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	// 健康检查
	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := s.engine.Group("/api/v1")
	{
		hdl := reelHandler.NewHandler(s.reelSvc, s.cfg.Pipeline.PostLatency)

		// 选项目录
		v1.GET("/options", hdl.Options)
		v1.GET("/options/actors/:style", hdl.ActorsForStyle)

		// 创作流水线
		v1.GET("/pipeline", hdl.State)
		v1.POST("/pipeline/input-method", hdl.SelectInputMethod)
		v1.POST("/pipeline/analyze", hdl.Analyze)
		v1.POST("/pipeline/scene", hdl.SelectScene)
		v1.POST("/pipeline/generate", hdl.Generate)
		v1.POST("/pipeline/approve", hdl.Approve)
		v1.POST("/pipeline/edit", hdl.Edit)
		v1.PATCH("/pipeline/editor", hdl.EditorOp)
		v1.POST("/pipeline/editor/save", hdl.SaveEdits)
		v1.POST("/pipeline/editor/cancel", hdl.CancelEdits)
		v1.POST("/pipeline/post", hdl.Post)
		v1.POST("/pipeline/home", hdl.GoHome)
		v1.POST("/pipeline/back", hdl.Back)
		v1.POST("/pipeline/feed", hdl.OpenFeed)

		// Feed
		v1.GET("/feed", hdl.Feed)
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Service 获取 Reel 服务 (用于测试)
func (s *Server) Service() *service.ReelService {
	return s.reelSvc
}
