package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "gitagpt/internal/chat/delivery/http"
	chatUC "gitagpt/internal/chat/usecase"
	"gitagpt/internal/classifier"
	"gitagpt/internal/conversation"
	conversationHTTP "gitagpt/internal/conversation/delivery/http"
	conversationRepo "gitagpt/internal/conversation/repository/supabase"
	conversationUC "gitagpt/internal/conversation/usecase"
	"gitagpt/internal/emotion"
	"gitagpt/internal/middleware"
	"gitagpt/internal/reflection"
	verseHTTP "gitagpt/internal/verse/delivery/http"
	verseRepo "gitagpt/internal/verse/repository/qdrant"
	verseUC "gitagpt/internal/verse/usecase"
)

// setupDomains wires repositories, usecases, and HTTP handlers for
// every domain and registers their routes.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Verse domain
	vRepo := verseRepo.New(srv.qdrant, srv.embedder, srv.collection, srv.l)
	vUC := verseUC.New(srv.l, vRepo, srv.chatConfig.TopK)
	verseHTTP.RegisterRoutes(api, verseHTTP.New(srv.l, vUC))
	srv.l.Infof(ctx, "Verse domain registered")

	// Conversation domain, optional without Supabase
	var convUC conversation.UseCase
	if srv.supabase != nil {
		cRepo := conversationRepo.New(srv.supabase, srv.l)
		impl := conversationUC.New(srv.l, cRepo)
		convUC = impl
		conversationHTTP.RegisterRoutes(api, conversationHTTP.New(srv.l, impl))
		srv.l.Infof(ctx, "Conversation domain registered")
	} else {
		srv.l.Warnf(ctx, "Supabase not configured, conversation persistence disabled")
	}

	// Chat domain
	cls := classifier.New(srv.huggingface, classifier.Config{
		Model:               srv.hfConfig.IntentModel,
		ConfidenceThreshold: srv.chatConfig.IntentThreshold,
	}, srv.l)
	detector := emotion.New(srv.huggingface, emotion.Config{
		Model:     srv.hfConfig.EmotionModel,
		Threshold: srv.chatConfig.EmotionThreshold,
	}, srv.l)
	generator := reflection.New(srv.llm, srv.l)

	uc := chatUC.New(srv.l, cls, detector, vUC, generator, convUC, srv.chatConfig.TopK)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, uc), mw.RateLimit(srv.chatConfig.RateLimitPerMin))
	srv.l.Infof(ctx, "Chat domain registered")

	return nil
}
