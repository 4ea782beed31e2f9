package supabase

const (
	tableSessions = "conversation_sessions"
	tableMessages = "conversation_messages"
)
