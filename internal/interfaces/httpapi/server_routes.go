package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/demonlist", handler.GetDemonlist)
	mux.HandleFunc("GET /v1/demonlist/snapshots", handler.ListSnapshots)

	mux.HandleFunc("GET /v1/demons", handler.FindDemonByName)
	mux.HandleFunc("GET /v1/demons/{demonID}", handler.GetDemon)
	mux.HandleFunc("GET /v1/demons/position/{position}", handler.GetDemonByPosition)

	mux.HandleFunc("GET /v1/players", handler.FindPlayerByName)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("POST /v1/records", handler.SubmitRecord)
	mux.HandleFunc("GET /v1/records/{recordID}", handler.GetRecord)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminToken(adminToken, fn))
	}

	admin("POST /v1/demons", handler.CreateDemon)
	admin("PATCH /v1/demons/{demonID}/position", handler.MoveDemon)
	admin("DELETE /v1/demons/{demonID}", handler.DeleteDemon)
	admin("PATCH /v1/demons/{demonID}/requirement", handler.UpdateRequirement)
	admin("POST /v1/demons/{demonID}/creators", handler.AddCreator)
	admin("DELETE /v1/demons/{demonID}/creators/{playerID}", handler.RemoveCreator)

	admin("POST /v1/records/review", handler.ReviewRecord)
	admin("PATCH /v1/records/{recordID}/status", handler.UpdateRecordStatus)
	admin("POST /v1/records/{recordID}/notes", handler.AddRecordNote)
	admin("DELETE /v1/records/{recordID}/notes/{noteID}", handler.DeleteRecordNote)

	admin("PATCH /v1/players/{playerID}", handler.UpdatePlayer)
	admin("GET /v1/submitters/{submitterID}", handler.GetSubmitter)
	admin("PATCH /v1/submitters/{submitterID}", handler.UpdateSubmitter)
}
