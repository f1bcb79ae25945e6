package handlers

import (
	"gadget_home_backend/internal/cache"
	"gadget_home_backend/internal/config"
	"gadget_home_backend/internal/order"
	"gadget_home_backend/internal/services"
	"gadget_home_backend/internal/store"
)

// Handler porte les dépendances injectées au démarrage. Aucun état global :
// tout ce dont un endpoint a besoin passe par ici.
type Handler struct {
	Store    store.Store
	Orders   *order.Workflow
	Cache    *cache.ProductCache
	Search   *services.Search
	Uploader *services.Uploader
	Cfg      *config.Config
}

func New(s store.Store, w *order.Workflow, c *cache.ProductCache, search *services.Search, up *services.Uploader, cfg *config.Config) *Handler {
	return &Handler{
		Store:    s,
		Orders:   w,
		Cache:    c,
		Search:   search,
		Uploader: up,
		Cfg:      cfg,
	}
}
