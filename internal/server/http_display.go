package server

import "fmt"

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET  /health                      - Health check")
	fmt.Println("  GET  /stats                       - Server statistics")
	fmt.Println("  POST /evaluate                    - Evaluate application readiness (requires API key)")
	fmt.Println("  POST /answer                      - Score an interview answer (requires API key)")
	fmt.Println("  POST /evaluations/{id}/answers    - Record a scored interview attempt (requires API key)")
	fmt.Println("  POST /evaluations/{id}/feedback   - Record trust feedback (requires API key)")
	fmt.Println("  GET  /evaluations                 - List stored evaluations (requires API key)")
	fmt.Println("  GET  /evaluations/{id}            - Get one evaluation (requires API key)")
	fmt.Println("  GET  /evaluations/{id}/export     - ATS export record (requires API key)")
	fmt.Println("  POST /jobs                        - Create a job role for screening (requires API key)")
	fmt.Println("  GET  /jobs                        - List stored job roles (requires API key)")
	fmt.Println("  POST /jobs/{id}/candidates        - Screen a candidate batch (requires API key)")
	fmt.Println("  GET  /jobs/{id}/candidates        - List screened candidates (requires API key)")
	fmt.Println("  GET  /analytics/student           - Student analytics (requires API key)")
	fmt.Println("  GET  /analytics/hr                - HR screening analytics (requires API key)")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if len(s.APIKeys) > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", len(s.APIKeys))
		fmt.Println("Include 'X-API-Key: <your-key>' header in requests")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %d bytes (%.1f MB)\n", s.MaxRequestSize, float64(s.MaxRequestSize)/(1024*1024))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
		fmt.Println("WARNING: No rate limiting configured!")
	}
}
