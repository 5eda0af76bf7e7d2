package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/web"
	"github.com/spf13/afero"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	site := handlers.NewSite(s.deps.Loader, s.deps.Formatter)
	homeHandler := handlers.NewHomeHandler(site, s.Cfg.GetFeaturedCount())
	galleryHandler := handlers.NewGalleryHandler(site)
	aboutHandler := handlers.NewAboutHandler(site)
	contactHandler := handlers.NewContactHandler(site, s.deps.Mailer, s.deps.IPLookup)
	healthHandler := handlers.NewHealthHandler(s.deps.Loader)

	controllers := map[page.Kind]echo.HandlerFunc{
		page.Home:    homeHandler.HomeGet,
		page.Gallery: galleryHandler.GalleryGet,
		page.About:   aboutHandler.AboutGet,
		page.Contact: contactHandler.ContactGet,
	}
	for _, entry := range page.Table {
		controller, ok := controllers[entry.Kind]
		if !ok {
			panic(fmt.Sprintf("no controller registered for page %s", entry.Kind))
		}
		for _, path := range entry.Paths {
			s.E.GET(path, controller)
		}
	}

	s.E.GET("/gallery/grid", galleryHandler.GridGet)
	s.E.GET("/gallery/works/:filename", galleryHandler.WorkGet)
	s.E.GET("/contact/qrcode/:platform", contactHandler.QRCodeGet)
	s.E.POST("/contact", contactHandler.ContactPost, appmiddleware.RateLimiter(s.Cfg.GetContactRateLimit()))

	s.E.GET("/health", healthHandler.HealthGet)

	s.registerStatic()
}

// registerStatic serves the data files, the work images and the site assets.
// Assets come from STATIC_DIR when it exists and from the binary otherwise.
func (s *Server) registerStatic() {
	fs := s.deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	s.E.StaticFS("/data", afero.NewIOFS(afero.NewBasePathFs(fs, s.Cfg.GetDataDir())))
	s.E.StaticFS(handlers.ImagesPath, afero.NewIOFS(afero.NewBasePathFs(fs, s.Cfg.GetImagesDir())))

	if dir := s.Cfg.GetStaticDir(); dir != "" {
		if ok, _ := afero.DirExists(fs, dir); ok {
			s.E.StaticFS("/static", afero.NewIOFS(afero.NewBasePathFs(fs, dir)))
			return
		}
	}
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
}
