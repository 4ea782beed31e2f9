package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "gitagpt/config"
	"gitagpt/pkg/huggingface"
	"gitagpt/pkg/llmprovider"
	"gitagpt/pkg/log"
	pkgQdrant "gitagpt/pkg/qdrant"
	pkgSupabase "gitagpt/pkg/supabase"
	"gitagpt/pkg/voyage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain collaborators
	chatConfig  appConfig.ChatConfig
	hfConfig    appConfig.HuggingFaceConfig
	qdrant      *pkgQdrant.Client
	collection  string
	embedder    voyage.IVoyage
	huggingface huggingface.IHuggingFace
	supabase    pkgSupabase.ISupabase
	llm         *llmprovider.Manager
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatConfig  appConfig.ChatConfig
	HFConfig    appConfig.HuggingFaceConfig
	Qdrant      *pkgQdrant.Client
	Collection  string
	Embedder    voyage.IVoyage
	HuggingFace huggingface.IHuggingFace // nil disables the model tier
	Supabase    pkgSupabase.ISupabase    // nil disables persistence
	LLM         *llmprovider.Manager
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatConfig:  cfg.ChatConfig,
		hfConfig:    cfg.HFConfig,
		qdrant:      cfg.Qdrant,
		collection:  cfg.Collection,
		embedder:    cfg.Embedder,
		huggingface: cfg.HuggingFace,
		supabase:    cfg.Supabase,
		llm:         cfg.LLM,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.qdrant == nil {
		return errors.New("qdrant client is required")
	}
	if srv.embedder == nil {
		return errors.New("embedder is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	return nil
}
