package products

import "github.com/go-chi/chi/v5"

// Register mounts the product endpoints on r.
func (h *ProductHandler) Register(r chi.Router) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.HandleList)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})
}
