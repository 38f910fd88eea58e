package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.ListenerInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	alerts := s.router.Group("/alerts")
	{
		alerts.POST("", s.webhookHandler.CreateAlert)
	}
}
